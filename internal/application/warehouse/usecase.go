package warehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
	"github.com/tu-usuario/distrifarma/pkg/logger"
)

// UseCase agrupa las operaciones de bodega: recepción de mercancía, consulta
// de stock por SKU y listado del inventario.
type UseCase struct {
	invRepo   repository.InventoryItemRepository
	auditRepo repository.AuditLogRepository
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de bodega.
func NewUseCase(invRepo repository.InventoryItemRepository, auditRepo repository.AuditLogRepository, log *logger.Logger) *UseCase {
	return &UseCase{invRepo: invRepo, auditRepo: auditRepo, log: log}
}

// AddInventory registra una recepción: crea el ítem con versión 0 y genera el
// serial de etiqueta SN-<sku>-<lote>-<ms>. La fecha de vencimiento acepta
// RFC 3339 o YYYY-MM-DD.
func (uc *UseCase) AddInventory(ctx context.Context, actorID string, in dto.AddInventoryRequest) (*dto.InventoryItemResponse, error) {
	if in.SKU == "" || in.Name == "" || in.BatchNumber == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := parseExpiry(in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:                uuid.New().String(),
		SKU:               in.SKU,
		Name:              in.Name,
		Description:       in.Description,
		BatchNumber:       in.BatchNumber,
		ExpiryDate:        expiry,
		Quantity:          in.Quantity,
		WarehouseLocation: in.WarehouseLocation,
		Version:           0,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.invRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	barcode := fmt.Sprintf("SN-%s-%s-%d", item.SKU, item.BatchNumber, now.UnixMilli())

	// Bitácora best-effort: una recepción ya comprometida no se pierde por un
	// fallo al anotarla; se deja constancia en el log.
	if actorID != "" {
		details, _ := json.Marshal(map[string]any{
			"sku":      item.SKU,
			"quantity": item.Quantity,
			"barcode":  barcode,
		})
		entry := &entity.AuditLogEntry{
			ID:        uuid.New().String(),
			UserID:    actorID,
			Action:    entity.AuditActionAddInventory,
			Resource:  "Inventory:" + item.ID,
			Details:   details,
			CreatedAt: now,
		}
		if err := uc.auditRepo.Create(ctx, entry); err != nil {
			uc.log.Warn().Err(err).Str("inventory_id", item.ID).Msg("no se pudo anotar la bitácora de recepción")
		}
	}

	resp := dto.ToInventoryItemResponse(item)
	resp.Barcode = barcode
	return resp, nil
}

// CheckStock devuelve el ítem por SKU, o ErrItemNotFound si no existe.
func (uc *UseCase) CheckStock(ctx context.Context, sku string) (*dto.InventoryItemResponse, error) {
	if sku == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.invRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return dto.ToInventoryItemResponse(item), nil
}

// GetByID devuelve el ítem por id, o ErrItemNotFound si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return dto.ToInventoryItemResponse(item), nil
}

// List devuelve una página del inventario.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.InventoryItemResponse, error) {
	page.DefaultPage()
	items, err := uc.invRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.ToInventoryItemResponse(it))
	}
	return resp, nil
}

func parseExpiry(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
