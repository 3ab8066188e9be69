package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devstudio/agencia-api/internal/application/dto"
	"github.com/devstudio/agencia-api/internal/application/usecase"
	"github.com/devstudio/agencia-api/internal/domain"
	"github.com/devstudio/agencia-api/internal/domain/entity"
)

// ProposalHandler maneja el pipeline de propuestas persistidas (protegido).
type ProposalHandler struct {
	uc *usecase.ProposalUseCase
}

// NewProposalHandler construye el handler.
func NewProposalHandler(uc *usecase.ProposalUseCase) *ProposalHandler {
	return &ProposalHandler{uc: uc}
}

// List godoc
// @Summary      Listar propuestas visibles para la sesión
// @Tags         propuestas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProposalResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/propuestas [get]
func (h *ProposalHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetSession(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Estados godoc
// @Summary      Estados válidos del pipeline, en orden
// @Tags         propuestas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/propuestas/estados [get]
func (h *ProposalHandler) Estados(c *fiber.Ctx) error {
	return c.JSON(entity.Estados())
}

// UpdateEstado godoc
// @Summary      Cambiar el estado de una propuesta (idempotente)
// @Tags         propuestas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la propuesta"
// @Param        body  body  dto.UpdateEstadoRequest  true  "uno de EN_PREPARACION, ENVIADO, GANADO, PERDIDO"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/propuestas/{id}/estado [patch]
func (h *ProposalHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateEstado(GetSession(c), c.Params("id"), in); err != nil {
		return proposalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateContent godoc
// @Summary      Sobreescribir problema y solución de una propuesta
// @Tags         propuestas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la propuesta"
// @Param        body  body  dto.UpdateContentRequest  true  "problema_cliente y solucion_ia completos"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/propuestas/{id} [put]
func (h *ProposalHandler) UpdateContent(c *fiber.Ctx) error {
	var in dto.UpdateContentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateContent(GetSession(c), c.Params("id"), in); err != nil {
		return proposalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// proposalError mapea los errores de dominio de propuestas a HTTP.
func proposalError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidStatus:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado no reconocido"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "problema y solución son obligatorios"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la propuesta no existe"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el dueño o un DIRECTOR pueden modificar"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
