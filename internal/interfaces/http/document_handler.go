package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-composer/internal/application/document"
	"github.com/jhoicas/invoice-composer/internal/application/dto"
	"github.com/jhoicas/invoice-composer/internal/domain/entity"
)

// DocumentHandler maneja las peticiones sobre instantáneas de documento.
// Nada se guarda: cada petición trae el documento completo y recibe el resultado.
type DocumentHandler struct {
	render *document.RenderUseCase
	edit   *document.EditUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(render *document.RenderUseCase, edit *document.EditUseCase) *DocumentHandler {
	return &DocumentHandler{render: render, edit: edit}
}

// Totals godoc
// @Summary      Totales del documento
// @Description  Posiciones enriquecidas, subtotal, descuento y total. No valida ni guarda nada.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body      entity.Document  true  "Instantánea del documento"
// @Success      200   {object}  dto.TotalsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents/totals [post]
func (h *DocumentHandler) Totals(c *fiber.Ctx) error {
	var doc entity.Document
	if err := c.BodyParser(&doc); err != nil {
		return invalidBody(c, err)
	}
	return c.JSON(h.render.Totals(&doc))
}

// Validate godoc
// @Summary      Validar documento
// @Description  Revisión orientativa de campos obligatorios y montos; un documento inválido se puede seguir componiendo.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body      entity.Document  true  "Instantánea del documento"
// @Success      200   {object}  dto.ValidationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents/validate [post]
func (h *DocumentHandler) Validate(c *fiber.Ctx) error {
	var doc entity.Document
	if err := c.BodyParser(&doc); err != nil {
		return invalidBody(c, err)
	}
	out := dto.ValidationResponse{Valid: true, Errors: []dto.FieldErrorDTO{}}
	if err := doc.Validate(); err != nil {
		out.Valid = false
		for _, fe := range entity.FieldErrors(err) {
			out.Errors = append(out.Errors, dto.FieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Vista previa HTML
// @Description  Vista imprimible (A4) en el idioma resuelto por ?locale= o Accept-Language.
// @Tags         documents
// @Accept       json
// @Produce      html
// @Param        locale  query     string           false  "Idioma de las etiquetas (de, en)"
// @Param        body    body      entity.Document  true   "Instantánea del documento"
// @Success      200     {string}  string           "documento HTML"
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/documents/preview [post]
func (h *DocumentHandler) Preview(c *fiber.Ctx) error {
	var doc entity.Document
	if err := c.BodyParser(&doc); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.render.PreviewHTML(c.Context(), &doc, GetLocale(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Type("html", "utf-8")
	return c.Send(out)
}

// PDF godoc
// @Summary      Exportar PDF
// @Description  PDF A4 como adjunto; el nombre sale del tipo y del número (rechnung_/angebot_).
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        locale  query     string           false  "Idioma de las etiquetas (de, en)"
// @Param        body    body      entity.Document  true   "Instantánea del documento"
// @Success      200     {file}    binary
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/documents/pdf [post]
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	var doc entity.Document
	if err := c.BodyParser(&doc); err != nil {
		return invalidBody(c, err)
	}
	pdfBytes, filename, err := h.render.ExportPDF(c.Context(), &doc, GetLocale(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}

// AddItem godoc
// @Summary      Agregar posición
// @Description  Devuelve una nueva instantánea con una posición en blanco al final.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LineItemEditRequest  true  "Documento actual"
// @Success      200   {object}  entity.Document
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents/items [post]
func (h *DocumentHandler) AddItem(c *fiber.Ctx) error {
	var in dto.LineItemEditRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.edit.AddLineItem(&in.Document)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Reemplazar posición
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        index  path      int                      true  "Índice de la posición (desde 0)"
// @Param        body   body      dto.LineItemEditRequest  true  "Documento actual y posición nueva"
// @Success      200    {object}  entity.Document
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/documents/items/{index} [put]
func (h *DocumentHandler) UpdateItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	var in dto.LineItemEditRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	if in.Item == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item es requerido"})
	}
	out, err := h.edit.UpdateLineItem(&in.Document, index, *in.Item)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar posición
// @Description  La última posición no se puede quitar (409).
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        index  path      int                      true  "Índice de la posición (desde 0)"
// @Param        body   body      dto.LineItemEditRequest  true  "Documento actual"
// @Success      200    {object}  entity.Document
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/documents/items/{index} [delete]
func (h *DocumentHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	var in dto.LineItemEditRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.edit.RemoveLineItem(&in.Document, index)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
