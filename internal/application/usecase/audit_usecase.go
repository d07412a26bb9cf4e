package usecase

import (
	"context"

	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
)

// AuditUseCase consulta de la bitácora (solo lectura: la bitácora es
// append-only y solo se escribe junto a la mutación que describe).
type AuditUseCase struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso de bitácora.
func NewAuditUseCase(auditRepo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// List devuelve una página de la bitácora, de más reciente a más antigua.
func (uc *AuditUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.AuditLogResponse, error) {
	page.DefaultPage()
	entries, err := uc.auditRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToAuditLogResponse(e))
	}
	return resp, nil
}
