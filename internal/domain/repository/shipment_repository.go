package repository

import (
	"context"

	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// ShipmentRepository define el puerto de persistencia para envíos y sus
// lecturas de cadena de frío.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *entity.Shipment) error
	GetByID(ctx context.Context, id string) (*entity.Shipment, error)
	UpdateLocation(ctx context.Context, id string, lat, lng float64, status string) error
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Shipment, error)
	ListByDriver(ctx context.Context, driverID string, limit, offset int) ([]*entity.Shipment, error)

	CreateColdChainLog(ctx context.Context, log *entity.ColdChainLog) error
	ListColdChainLogs(ctx context.Context, shipmentID string) ([]*entity.ColdChainLog, error)
}
