package logistics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
	"github.com/tu-usuario/distrifarma/pkg/logger"
)

// UseCase agrupa las operaciones de transporte: creación de envíos, rastreo
// de ubicación, registro de cadena de frío y entrega.
type UseCase struct {
	shipmentRepo repository.ShipmentRepository
	orderRepo    repository.OrderRepository
	auditRepo    repository.AuditLogRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso de transporte.
func NewUseCase(
	shipmentRepo repository.ShipmentRepository,
	orderRepo repository.OrderRepository,
	auditRepo repository.AuditLogRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{shipmentRepo: shipmentRepo, orderRepo: orderRepo, auditRepo: auditRepo, log: log}
}

// CreateShipment asigna un pedido existente a un conductor y vehículo.
// El envío nace en PREPARING.
func (uc *UseCase) CreateShipment(ctx context.Context, actorID string, in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	if in.OrderID == "" || in.DriverID == "" || in.VehicleID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	shipment := &entity.Shipment{
		ID:        uuid.New().String(),
		OrderID:   in.OrderID,
		DriverID:  in.DriverID,
		VehicleID: in.VehicleID,
		Status:    entity.ShipmentStatusPreparing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.shipmentRepo.Create(ctx, shipment); err != nil {
		return nil, err
	}

	if actorID != "" {
		details, _ := json.Marshal(map[string]any{
			"order_id":  in.OrderID,
			"driver_id": in.DriverID,
		})
		entry := &entity.AuditLogEntry{
			ID:        uuid.New().String(),
			UserID:    actorID,
			Action:    entity.AuditActionCreateShipment,
			Resource:  "Shipment:" + shipment.ID,
			Details:   details,
			CreatedAt: now,
		}
		if err := uc.auditRepo.Create(ctx, entry); err != nil {
			uc.log.Warn().Err(err).Str("shipment_id", shipment.ID).Msg("no se pudo anotar la bitácora del envío")
		}
	}
	return dto.ToShipmentResponse(shipment), nil
}

// UpdateLocation registra la posición reportada por el conductor y pasa el
// envío a IN_TRANSIT si aún estaba en preparación.
func (uc *UseCase) UpdateLocation(ctx context.Context, id string, in dto.UpdateLocationRequest) (*dto.ShipmentResponse, error) {
	shipment, err := uc.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}

	status := shipment.Status
	if status == entity.ShipmentStatusPreparing {
		status = entity.ShipmentStatusInTransit
	}
	if err := uc.shipmentRepo.UpdateLocation(ctx, id, in.Lat, in.Lng, status); err != nil {
		return nil, err
	}

	shipment.CurrentLat = &in.Lat
	shipment.CurrentLng = &in.Lng
	shipment.Status = status
	return dto.ToShipmentResponse(shipment), nil
}

// RecordTemperature guarda una lectura de sensor del envío. Una lectura fuera
// del rango 2–8 °C se registra igual y dispara una alerta en el log.
func (uc *UseCase) RecordTemperature(ctx context.Context, id string, in dto.RecordTemperatureRequest) (*dto.ColdChainLogResponse, error) {
	if in.SensorID == "" {
		return nil, domain.ErrInvalidInput
	}
	shipment, err := uc.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}

	reading := &entity.ColdChainLog{
		ID:          uuid.New().String(),
		ShipmentID:  id,
		SensorID:    in.SensorID,
		Temperature: in.Temperature,
		RecordedAt:  time.Now(),
	}
	if err := uc.shipmentRepo.CreateColdChainLog(ctx, reading); err != nil {
		return nil, err
	}

	if !reading.TemperatureInRange() {
		uc.log.Warn().
			Str("shipment_id", id).
			Str("sensor_id", in.SensorID).
			Float64("temperature", in.Temperature).
			Float64("min", entity.ColdChainMinTemp).
			Float64("max", entity.ColdChainMaxTemp).
			Msg("excursión de cadena de frío")
	}
	return dto.ToColdChainLogResponse(reading), nil
}

// MarkDelivered marca el envío como entregado.
func (uc *UseCase) MarkDelivered(ctx context.Context, id string) (*dto.ShipmentResponse, error) {
	shipment, err := uc.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.shipmentRepo.UpdateStatus(ctx, id, entity.ShipmentStatusDelivered); err != nil {
		return nil, err
	}
	shipment.Status = entity.ShipmentStatusDelivered
	return dto.ToShipmentResponse(shipment), nil
}

// GetByID devuelve el envío con su historial de cadena de frío.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.ShipmentResponse, []*dto.ColdChainLogResponse, error) {
	shipment, err := uc.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if shipment == nil {
		return nil, nil, domain.ErrNotFound
	}
	logs, err := uc.shipmentRepo.ListColdChainLogs(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	readings := make([]*dto.ColdChainLogResponse, 0, len(logs))
	for _, l := range logs {
		readings = append(readings, dto.ToColdChainLogResponse(l))
	}
	return dto.ToShipmentResponse(shipment), readings, nil
}

// List devuelve una página de envíos; driverID no vacío filtra por conductor
// (la vista de un DRIVER se limita a sus propios envíos).
func (uc *UseCase) List(ctx context.Context, driverID string, page dto.PageRequest) ([]*dto.ShipmentResponse, error) {
	page.DefaultPage()
	var (
		shipments []*entity.Shipment
		err       error
	)
	if driverID != "" {
		shipments, err = uc.shipmentRepo.ListByDriver(ctx, driverID, page.Limit, page.Offset)
	} else {
		shipments, err = uc.shipmentRepo.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		resp = append(resp, dto.ToShipmentResponse(s))
	}
	return resp, nil
}
