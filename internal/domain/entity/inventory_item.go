package entity

import "time"

// InventoryItem representa una fila del libro de inventario: stock autoritativo
// de un SKU con su contador de versión para control de concurrencia optimista.
// Quantity nunca es negativo; Version avanza exactamente en 1 por cada
// deducción exitosa y nunca retrocede.
type InventoryItem struct {
	ID                string
	SKU               string // código único legible (ej: MED-001)
	Name              string
	Description       string
	BatchNumber       string
	ExpiryDate        time.Time
	Quantity          int64
	WarehouseLocation string
	Version           int64 // inicia en 0; unidad del OCC
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
