package repository

import (
	"context"

	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// InventoryItemRepository define el puerto del libro de inventario.
// Las lecturas dentro de una transacción deben hacerse con el repo atado a esa
// tx para que la lectura sea consistente con la escritura condicional posterior.
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error)
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryItem, error)

	// DeductIfVersionMatches descuenta amount y avanza version en 1 solo si la
	// versión almacenada sigue siendo expectedVersion y la cantidad alcanza.
	// Devuelve applied=false (cero filas afectadas) si la versión ya avanzó;
	// el caller decide cómo interpretar el conflicto. Es la única vía permitida
	// para decrementar stock: cualquier otra ruta anula la garantía del OCC.
	DeductIfVersionMatches(ctx context.Context, id string, expectedVersion, amount int64) (bool, error)
}
