package dto

import (
	"time"

	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// CreateUserRequest body para POST /api/users (solo ADMIN).
type CreateUserRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Role       string `json:"role"`                  // ADMIN | HOSPITAL_MANAGER | DRIVER
	HospitalID string `json:"hospital_id,omitempty"` // requerido para HOSPITAL_MANAGER
}

// UserResponse usuario en respuestas (nunca incluye el hash).
// MustChangePassword le indica al portal que debe forzar el cambio de
// password antes de dejar operar al usuario.
type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Role               string    `json:"role"`
	HospitalID         string    `json:"hospital_id,omitempty"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest body para POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ToUserResponse mapea la entidad a su DTO.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		Role:               u.Role,
		HospitalID:         u.HospitalID,
		MustChangePassword: u.MustChangePassword,
		CreatedAt:          u.CreatedAt,
	}
}
