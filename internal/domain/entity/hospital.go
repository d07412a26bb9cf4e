package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hospital representa un cliente hospitalario. Para el motor de pedidos solo
// importa su existencia; el ciclo de vida completo lo maneja el portal admin.
type Hospital struct {
	ID          string
	Name        string
	Location    string
	ContactInfo string
	CreditLimit decimal.Decimal
	Balance     decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
