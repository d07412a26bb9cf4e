package entity

import "time"

// Estados de Shipment.
const (
	ShipmentStatusPreparing = "PREPARING"
	ShipmentStatusInTransit = "IN_TRANSIT"
	ShipmentStatusDelivered = "DELIVERED"
)

// Umbrales de cadena de frío (°C) para producto farmacéutico refrigerado.
const (
	ColdChainMinTemp = 2.0
	ColdChainMaxTemp = 8.0
)

// Shipment representa el envío de un pedido asignado a un conductor y vehículo.
type Shipment struct {
	ID         string
	OrderID    string
	DriverID   string
	VehicleID  string
	Status     string
	CurrentLat *float64
	CurrentLng *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ColdChainLog es una lectura de temperatura de un sensor durante el transporte.
type ColdChainLog struct {
	ID          string
	ShipmentID  string
	SensorID    string
	Temperature float64
	RecordedAt  time.Time
}

// TemperatureInRange indica si la lectura está dentro del rango 2–8 °C.
func (c *ColdChainLog) TemperatureInRange() bool {
	return c.Temperature >= ColdChainMinTemp && c.Temperature <= ColdChainMaxTemp
}
