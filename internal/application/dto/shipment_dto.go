package dto

import (
	"time"

	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// CreateShipmentRequest body para POST /api/tms/shipments.
type CreateShipmentRequest struct {
	OrderID   string `json:"order_id"`
	DriverID  string `json:"driver_id"`
	VehicleID string `json:"vehicle_id"`
}

// UpdateLocationRequest body para PATCH /api/tms/shipments/:id/location.
type UpdateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RecordTemperatureRequest body para POST /api/tms/shipments/:id/temperature.
type RecordTemperatureRequest struct {
	SensorID    string  `json:"sensor_id"`
	Temperature float64 `json:"temperature"`
}

// ShipmentResponse envío en respuestas.
type ShipmentResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	DriverID   string    `json:"driver_id"`
	VehicleID  string    `json:"vehicle_id"`
	Status     string    `json:"status"`
	CurrentLat *float64  `json:"current_lat,omitempty"`
	CurrentLng *float64  `json:"current_lng,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ColdChainLogResponse lectura de temperatura en respuestas.
type ColdChainLogResponse struct {
	ID          string    `json:"id"`
	ShipmentID  string    `json:"shipment_id"`
	SensorID    string    `json:"sensor_id"`
	Temperature float64   `json:"temperature"`
	InRange     bool      `json:"in_range"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// ToShipmentResponse mapea la entidad a su DTO.
func ToShipmentResponse(s *entity.Shipment) *ShipmentResponse {
	if s == nil {
		return nil
	}
	return &ShipmentResponse{
		ID:         s.ID,
		OrderID:    s.OrderID,
		DriverID:   s.DriverID,
		VehicleID:  s.VehicleID,
		Status:     s.Status,
		CurrentLat: s.CurrentLat,
		CurrentLng: s.CurrentLng,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ToColdChainLogResponse mapea la entidad a su DTO.
func ToColdChainLogResponse(c *entity.ColdChainLog) *ColdChainLogResponse {
	if c == nil {
		return nil
	}
	return &ColdChainLogResponse{
		ID:          c.ID,
		ShipmentID:  c.ShipmentID,
		SensorID:    c.SensorID,
		Temperature: c.Temperature,
		InRange:     c.TemperatureInRange(),
		RecordedAt:  c.RecordedAt,
	}
}
