package repository

import (
	"context"

	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	// Create persiste cabecera y líneas. Debe invocarse dentro de la misma
	// transacción que las deducciones de inventario del pedido.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByHospital(ctx context.Context, hospitalID string, limit, offset int) ([]*entity.Order, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
}
