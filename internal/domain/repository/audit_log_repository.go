package repository

import (
	"context"

	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// AuditLogRepository define el puerto de la bitácora de auditoría (append-only).
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entity.AuditLogEntry) error
	List(ctx context.Context, limit, offset int) ([]*entity.AuditLogEntry, error)
}
