package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP de pedidos (protegido).
type OrderHandler struct {
	place        *orders.PlaceOrderUseCase
	query        *orders.QueryUseCase
	deliveryNote *orders.DeliveryNoteUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(place *orders.PlaceOrderUseCase, query *orders.QueryUseCase, deliveryNote *orders.DeliveryNoteUseCase) *OrderHandler {
	return &OrderHandler{place: place, query: query, deliveryNote: deliveryNote}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Deduce inventario bajo control de concurrencia optimista y crea
//
//	el pedido en una sola transacción. Un 409 con retriable=true
//	indica conflicto de versión: releer y reintentar.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "hospital_id y líneas"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/oms/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Un HOSPITAL_MANAGER solo pide para su propio hospital; el claim manda
	// sobre lo que venga en el body.
	if scope := GetHospitalID(c); scope != "" {
		in.HospitalID = scope
	}
	resp, err := h.place.PlaceOrder(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.OrderResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/oms/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	resp, err := h.query.List(c.Context(), GetHospitalID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Consultar pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/oms/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.query.GetByID(c.Context(), c.Params("id"), GetHospitalID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeliveryNote godoc
// @Summary      Remito del pedido en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/oms/orders/{id}/delivery-note [get]
func (h *OrderHandler) DeliveryNote(c *fiber.Ctx) error {
	pdfBytes, err := h.deliveryNote.Generate(c.Context(), c.Params("id"), GetHospitalID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="remito-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
