package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/devstudio/agencia-api/internal/application/dto"
	"github.com/devstudio/agencia-api/internal/application/pipeline"
	"github.com/devstudio/agencia-api/internal/domain"
)

// PipelineHandler maneja la generación IA y la confirmación de borradores (protegido).
type PipelineHandler struct {
	uc *pipeline.UseCase
}

// NewPipelineHandler construye el handler.
func NewPipelineHandler(uc *pipeline.UseCase) *PipelineHandler {
	return &PipelineHandler{uc: uc}
}

// Draft godoc
// @Summary      Generar un borrador de propuesta con IA
// @Description  Redacta la propuesta para un cliente visible y la retiene en
//               estado transitorio hasta confirmar o descartar. Timeout interno
//               de 30 s con un único reintento; el error del proveedor se
//               devuelve tal cual y no queda borrador.
// @Tags         propuestas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DraftRequest  true  "cliente_id, problema y enfoque"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/propuestas/draft [post]
func (h *PipelineHandler) Draft(c *fiber.Ctx) error {
	var in dto.DraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	draft, err := h.uc.Draft(c.Context(), GetSession(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente_id, problema y enfoque son obligatorios"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el cliente no existe"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el cliente no es visible para esta sesión"})
		}
		return generationError(c, err)
	}
	return c.JSON(draft)
}

// GetDraft godoc
// @Summary      Consultar el borrador retenido para la sesión
// @Tags         propuestas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/propuestas/draft [get]
func (h *PipelineHandler) GetDraft(c *fiber.Ctx) error {
	draft, err := h.uc.GetDraft(GetSession(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_DRAFT", Message: "no hay borrador pendiente"})
	}
	return c.JSON(draft)
}

// DiscardDraft godoc
// @Summary      Descartar el borrador retenido
// @Tags         propuestas
// @Security     Bearer
// @Success      204
// @Router       /api/propuestas/draft [delete]
func (h *PipelineHandler) DiscardDraft(c *fiber.Ctx) error {
	h.uc.Discard(GetSession(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Commit godoc
// @Summary      Confirmar el borrador y persistirlo como propuesta
// @Description  Acción manual y explícita: crea la propuesta en EN_PREPARACION
//               a partir del borrador retenido y lo limpia. Sin borrador se
//               rechaza con 409.
// @Tags         propuestas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitProposalRequest  true  "fecha_limite_entrega"
// @Success      201   {object}  dto.ProposalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/propuestas [post]
func (h *PipelineHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitProposalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	proposal, err := h.uc.Commit(GetSession(c), in)
	if err != nil {
		switch err {
		case domain.ErrNoDraft:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_DRAFT", Message: "no hay borrador pendiente que confirmar"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_limite_entrega es obligatoria"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(proposal)
}

// generationError mapea fallos del generador externo: el mensaje del proveedor
// se entrega al usuario sin reinterpretar.
func generationError(c *fiber.Ctx, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "GEMINI_API_KEY") {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: "el generador de propuestas no está configurado"})
	}
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded") || strings.Contains(msg, "cancelación") {
		return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "el generador tardó demasiado; intenta de nuevo"})
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "GENERATION", Message: msg})
}
