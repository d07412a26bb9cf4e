package dto

import (
	"encoding/json"
	"time"

	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// AuditLogResponse entrada de bitácora en respuestas.
type AuditLogResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Action    string          `json:"action"`
	Resource  string          `json:"resource"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToAuditLogResponse mapea la entidad a su DTO.
func ToAuditLogResponse(e *entity.AuditLogEntry) *AuditLogResponse {
	if e == nil {
		return nil
	}
	return &AuditLogResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Action:    e.Action,
		Resource:  e.Resource,
		Details:   e.Details,
		CreatedAt: e.CreatedAt,
	}
}
