package entity

import "time"

// Roles válidos para User, uno por portal: dashboard admin, portal hospitalario
// y PWA de conductores.
const (
	RoleAdmin           = "ADMIN"
	RoleHospitalManager = "HOSPITAL_MANAGER"
	RoleDriver          = "DRIVER"
)

// User representa un usuario del sistema. HospitalID solo aplica a los
// HOSPITAL_MANAGER (vacío para admin y conductores).
type User struct {
	ID                 string
	Email              string
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	Name               string
	Role               string
	HospitalID         string
	MustChangePassword bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
