package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Order. El motor de pedidos solo crea en PENDING; las transiciones
// posteriores pertenecen a logística.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
)

// Order es el agregado de pedido: cabecera + líneas, creado atómicamente junto
// con la deducción de inventario. No existe el estado parcial: o el pedido y
// todas sus deducciones comprometen, o nada lo hace.
type Order struct {
	ID         string
	HospitalID string
	TotalPrice decimal.Decimal
	Status     string
	Items      []OrderItem
	CreatedAt  time.Time
}

// OrderItem es una línea del pedido: referencia al ítem de inventario y la
// cantidad solicitada.
type OrderItem struct {
	ID          string
	OrderID     string
	InventoryID string
	Quantity    int64
}
