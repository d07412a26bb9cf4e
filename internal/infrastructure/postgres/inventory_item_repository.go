package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del libro de inventario sobre PostgreSQL
// (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const inventoryColumns = `id, sku, name, description, batch_number, expiry_date, quantity, warehouse_location, version, created_at, updated_at`

// Create persiste un ítem nuevo (recepción de bodega). Version inicia en 0.
func (r *InventoryItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, sku, name, description, batch_number, expiry_date, quantity, warehouse_location, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.SKU, item.Name, item.Description, item.BatchNumber, item.ExpiryDate,
		item.Quantity, item.WarehouseLocation, item.Version, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Dentro de una tx la lectura es consistente
// con la escritura condicional posterior.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetBySKU obtiene un ítem por SKU.
func (r *InventoryItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE sku = $1`
	return r.scanOne(ctx, query, sku)
}

func (r *InventoryItemRepo) scanOne(ctx context.Context, query string, arg any) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&it.ID, &it.SKU, &it.Name, &it.Description, &it.BatchNumber, &it.ExpiryDate,
		&it.Quantity, &it.WarehouseLocation, &it.Version, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// List lista ítems ordenados por SKU.
func (r *InventoryItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY sku LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.SKU, &it.Name, &it.Description, &it.BatchNumber, &it.ExpiryDate,
			&it.Quantity, &it.WarehouseLocation, &it.Version, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeductIfVersionMatches descuenta amount y avanza version en un solo UPDATE
// condicional. La cláusula WHERE exige la versión leída y que la cantidad
// alcance, así la fila nunca queda negativa y una actualización perdida es
// estructuralmente imposible: cero filas afectadas significa que otro escritor
// comprometió primero (applied=false), nunca un sobrescrito silencioso.
func (r *InventoryItemRepo) DeductIfVersionMatches(ctx context.Context, id string, expectedVersion, amount int64) (bool, error) {
	query := `
		UPDATE inventory_items
		SET quantity = quantity - $3, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2 AND quantity >= $3`
	tag, err := r.q.Exec(ctx, query, id, expectedVersion, amount)
	if err != nil {
		return false, fmt.Errorf("deduct inventory item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
