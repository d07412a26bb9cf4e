package orders

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// FixedRatePricer implementación placeholder de Pricer: misma tarifa por
// unidad para todo SKU y hospital. Sustituible sin tocar el motor de pedidos.
type FixedRatePricer struct {
	Rate decimal.Decimal
}

// NewFixedRatePricer construye el pricer con la tarifa estándar (10 por unidad).
func NewFixedRatePricer() *FixedRatePricer {
	return &FixedRatePricer{Rate: decimal.NewFromInt(10)}
}

// UnitPrice devuelve la tarifa fija, sin importar ítem ni hospital.
func (p *FixedRatePricer) UnitPrice(_ context.Context, _ *entity.InventoryItem, _ string) (decimal.Decimal, error) {
	return p.Rate, nil
}
