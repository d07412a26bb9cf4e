package entity

import (
	"encoding/json"
	"time"
)

// Acciones registradas en la bitácora.
const (
	AuditActionCreateOrder    = "CREATE_ORDER"
	AuditActionAddInventory   = "ADD_INVENTORY"
	AuditActionCreateShipment = "CREATE_SHIPMENT"
)

// AuditLogEntry es una entrada inmutable de la bitácora de auditoría.
// Se escribe en la misma unidad de trabajo que la mutación que describe,
// después de que esa mutación quedó garantizada; nunca se actualiza ni borra.
type AuditLogEntry struct {
	ID        string
	UserID    string
	Action    string          // ej: CREATE_ORDER
	Resource  string          // ej: Order:<id>
	Details   json.RawMessage // blob libre: totales, conteos, etc.
	CreatedAt time.Time
}
