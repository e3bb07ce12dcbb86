package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-composer/internal/application/document"
	"github.com/jhoicas/invoice-composer/internal/domain/entity"
)

// TemplateHandler entrega los documentos de partida por tipo.
type TemplateHandler struct {
	edit *document.EditUseCase
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(edit *document.EditUseCase) *TemplateHandler {
	return &TemplateHandler{edit: edit}
}

// Get godoc
// @Summary      Plantilla por tipo
// @Description  Documento de partida completo. Es también el cambio de tipo del editor: el anterior se reemplaza entero.
// @Tags         templates
// @Produce      json
// @Param        kind  path      string  true  "invoice o quote"
// @Success      200   {object}  entity.Document
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/templates/{kind} [get]
func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	kind, err := entity.ParseDocumentKind(c.Params("kind"))
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.edit.SetKind(kind)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}
