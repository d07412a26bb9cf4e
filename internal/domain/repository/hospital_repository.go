package repository

import (
	"context"

	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// HospitalRepository define el puerto de persistencia para Hospital.
// El motor de pedidos solo usa GetByID como chequeo de existencia.
type HospitalRepository interface {
	Create(ctx context.Context, hospital *entity.Hospital) error
	GetByID(ctx context.Context, id string) (*entity.Hospital, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Hospital, error)
}
