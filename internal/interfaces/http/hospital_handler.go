package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/application/usecase"
)

// HospitalHandler maneja las peticiones HTTP de hospitales (protegido).
type HospitalHandler struct {
	uc *usecase.HospitalUseCase
}

// NewHospitalHandler construye el handler.
func NewHospitalHandler(uc *usecase.HospitalUseCase) *HospitalHandler {
	return &HospitalHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar hospital cliente
// @Tags         hospitals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHospitalRequest  true  "nombre, ubicación, contacto, cupo de crédito"
// @Success      201   {object}  dto.HospitalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/hospitals [post]
func (h *HospitalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHospitalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar hospitales
// @Tags         hospitals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.HospitalResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/hospitals [get]
func (h *HospitalHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	resp, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Consultar hospital
// @Tags         hospitals
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del hospital"
// @Success      200  {object}  dto.HospitalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hospitals/{id} [get]
func (h *HospitalHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
