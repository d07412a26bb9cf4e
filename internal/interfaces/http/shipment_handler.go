package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/application/logistics"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// ShipmentHandler maneja las peticiones HTTP de transporte (protegido).
type ShipmentHandler struct {
	uc *logistics.UseCase
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(uc *logistics.UseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear envío
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipmentRequest  true  "order_id, driver_id, vehicle_id"
// @Success      201   {object}  dto.ShipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tms/shipments [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateShipment(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar envíos
// @Description  Un DRIVER solo ve sus propios envíos; los demás roles ven todos.
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.ShipmentResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/tms/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	driverScope := ""
	if GetRole(c) == entity.RoleDriver {
		driverScope = GetUserID(c)
	}
	resp, err := h.uc.List(c.Context(), driverScope, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Consultar envío con su cadena de frío
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del envío"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tms/shipments/{id} [get]
func (h *ShipmentHandler) GetByID(c *fiber.Ctx) error {
	shipment, readings, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"shipment":        shipment,
		"cold_chain_logs": readings,
	})
}

// UpdateLocation godoc
// @Summary      Reportar ubicación del envío
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del envío"
// @Param        body  body  dto.UpdateLocationRequest  true  "lat y lng"
// @Success      200   {object}  dto.ShipmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tms/shipments/{id}/location [patch]
func (h *ShipmentHandler) UpdateLocation(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateLocation(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// RecordTemperature godoc
// @Summary      Registrar lectura de cadena de frío
// @Description  La lectura se guarda siempre; fuera de 2–8 °C dispara una alerta.
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del envío"
// @Param        body  body  dto.RecordTemperatureRequest  true  "sensor_id y temperature"
// @Success      201   {object}  dto.ColdChainLogResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tms/shipments/{id}/temperature [post]
func (h *ShipmentHandler) RecordTemperature(c *fiber.Ctx) error {
	var in dto.RecordTemperatureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.RecordTemperature(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// MarkDelivered godoc
// @Summary      Marcar envío como entregado
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del envío"
// @Success      200  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tms/shipments/{id}/deliver [patch]
func (h *ShipmentHandler) MarkDelivered(c *fiber.Ctx) error {
	resp, err := h.uc.MarkDelivered(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
