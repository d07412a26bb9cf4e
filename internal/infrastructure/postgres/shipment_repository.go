package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación del puerto ShipmentRepository sobre PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador.
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

const shipmentColumns = `id, order_id, driver_id, vehicle_id, status, current_lat, current_lng, created_at, updated_at`

// Create persiste un envío nuevo.
func (r *ShipmentRepo) Create(ctx context.Context, s *entity.Shipment) error {
	query := `
		INSERT INTO shipments (id, order_id, driver_id, vehicle_id, status, current_lat, current_lng, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.OrderID, s.DriverID, s.VehicleID, s.Status, s.CurrentLat, s.CurrentLng, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID obtiene un envío por ID (nil, nil si no existe).
func (r *ShipmentRepo) GetByID(ctx context.Context, id string) (*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`
	var s entity.Shipment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.OrderID, &s.DriverID, &s.VehicleID, &s.Status, &s.CurrentLat, &s.CurrentLng,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return &s, nil
}

// UpdateLocation actualiza la posición reportada por el conductor y el estado.
func (r *ShipmentRepo) UpdateLocation(ctx context.Context, id string, lat, lng float64, status string) error {
	query := `
		UPDATE shipments SET current_lat = $2, current_lng = $3, status = $4, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, lat, lng, status)
	if err != nil {
		return fmt.Errorf("update shipment location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus actualiza solo el estado del envío.
func (r *ShipmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE shipments SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update shipment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista envíos, más recientes primero.
func (r *ShipmentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListByDriver lista los envíos asignados a un conductor (PWA de conductores).
func (r *ShipmentRepo) ListByDriver(ctx context.Context, driverID string, limit, offset int) ([]*entity.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + ` FROM shipments WHERE driver_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, driverID, limit, offset)
}

func (r *ShipmentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Shipment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(
			&s.ID, &s.OrderID, &s.DriverID, &s.VehicleID, &s.Status, &s.CurrentLat, &s.CurrentLng,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CreateColdChainLog persiste una lectura de temperatura.
func (r *ShipmentRepo) CreateColdChainLog(ctx context.Context, log *entity.ColdChainLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO cold_chain_logs (id, shipment_id, sensor_id, temperature, recorded_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, log.ID, log.ShipmentID, log.SensorID, log.Temperature, log.RecordedAt)
	if err != nil {
		return fmt.Errorf("insert cold chain log: %w", err)
	}
	return nil
}

// ListColdChainLogs lista las lecturas de un envío en orden cronológico.
func (r *ShipmentRepo) ListColdChainLogs(ctx context.Context, shipmentID string) ([]*entity.ColdChainLog, error) {
	query := `
		SELECT id, shipment_id, sensor_id, temperature, recorded_at
		FROM cold_chain_logs WHERE shipment_id = $1 ORDER BY recorded_at`
	rows, err := r.q.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list cold chain logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.ColdChainLog
	for rows.Next() {
		var c entity.ColdChainLog
		if err := rows.Scan(&c.ID, &c.ShipmentID, &c.SensorID, &c.Temperature, &c.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan cold chain log: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
