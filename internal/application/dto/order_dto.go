package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// CreateOrderRequest body para POST /api/oms/orders.
type CreateOrderRequest struct {
	HospitalID string             `json:"hospital_id"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderItemRequest una línea del pedido: ítem de inventario y cantidad (> 0).
type OrderItemRequest struct {
	InventoryID string `json:"inventory_id"`
	Quantity    int64  `json:"quantity"`
}

// OrderItemResponse línea del pedido en respuestas.
type OrderItemResponse struct {
	ID          string `json:"id"`
	InventoryID string `json:"inventory_id"`
	Quantity    int64  `json:"quantity"`
}

// OrderResponse pedido en respuestas.
type OrderResponse struct {
	ID         string              `json:"id"`
	HospitalID string              `json:"hospital_id"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	Status     string              `json:"status"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
}

// ToOrderResponse mapea la entidad a su DTO.
func ToOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	resp := &OrderResponse{
		ID:         o.ID,
		HospitalID: o.HospitalID,
		TotalPrice: o.TotalPrice,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          it.ID,
			InventoryID: it.InventoryID,
			Quantity:    it.Quantity,
		})
	}
	return resp
}
