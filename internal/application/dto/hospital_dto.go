package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// CreateHospitalRequest body para POST /api/hospitals (solo ADMIN).
type CreateHospitalRequest struct {
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	ContactInfo string          `json:"contact_info"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// HospitalResponse hospital en respuestas.
type HospitalResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	ContactInfo string          `json:"contact_info"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToHospitalResponse mapea la entidad a su DTO.
func ToHospitalResponse(h *entity.Hospital) *HospitalResponse {
	if h == nil {
		return nil
	}
	return &HospitalResponse{
		ID:          h.ID,
		Name:        h.Name,
		Location:    h.Location,
		ContactInfo: h.ContactInfo,
		CreditLimit: h.CreditLimit,
		Balance:     h.Balance,
		CreatedAt:   h.CreatedAt,
	}
}
