package orders

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad de trabajo del motor de pedidos:
// garantiza que deducción de inventario, creación del pedido y bitácora
// comprometen o se revierten como un solo paso indivisible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryItemRepository,
		orderRepo repository.OrderRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}

// Pricer resuelve el precio unitario de un ítem para un hospital. Aísla la
// lógica de precios del motor transaccional: en producción la implementa el
// colaborador de pricing; aquí hay un placeholder de tarifa fija.
type Pricer interface {
	UnitPrice(ctx context.Context, item *entity.InventoryItem, hospitalID string) (decimal.Decimal, error)
}
