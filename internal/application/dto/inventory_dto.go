package dto

import (
	"time"

	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// AddInventoryRequest body para POST /api/wms/inventory (recepción de bodega).
type AddInventoryRequest struct {
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	BatchNumber       string `json:"batch_number"`
	ExpiryDate        string `json:"expiry_date"` // RFC 3339 o YYYY-MM-DD
	Quantity          int64  `json:"quantity"`
	WarehouseLocation string `json:"warehouse_location"`
}

// InventoryItemResponse ítem de inventario en respuestas. Se expone la versión
// para que clientes avanzados puedan razonar sobre reintentos.
type InventoryItemResponse struct {
	ID                string    `json:"id"`
	SKU               string    `json:"sku"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	BatchNumber       string    `json:"batch_number"`
	ExpiryDate        time.Time `json:"expiry_date"`
	Quantity          int64     `json:"quantity"`
	WarehouseLocation string    `json:"warehouse_location"`
	Version           int64     `json:"version"`
	Barcode           string    `json:"barcode,omitempty"` // serial generado en recepción
	CreatedAt         time.Time `json:"created_at"`
}

// ToInventoryItemResponse mapea la entidad a su DTO.
func ToInventoryItemResponse(it *entity.InventoryItem) *InventoryItemResponse {
	if it == nil {
		return nil
	}
	return &InventoryItemResponse{
		ID:                it.ID,
		SKU:               it.SKU,
		Name:              it.Name,
		Description:       it.Description,
		BatchNumber:       it.BatchNumber,
		ExpiryDate:        it.ExpiryDate,
		Quantity:          it.Quantity,
		WarehouseLocation: it.WarehouseLocation,
		Version:           it.Version,
		CreatedAt:         it.CreatedAt,
	}
}
