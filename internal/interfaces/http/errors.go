package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-composer/internal/application/dto"
	"github.com/jhoicas/invoice-composer/internal/domain"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
)

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, i18n.ErrUnknownLocale):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_LOCALE", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownKind):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_KIND", Message: "tipo de documento desconocido (INVOICE o QUOTE)"})
	case errors.Is(err, domain.ErrLastLineItem):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LAST_LINE_ITEM", Message: "el documento debe conservar al menos una posición"})
	case errors.Is(err, domain.ErrLineItemIndex):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "LINE_ITEM_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// invalidBody responde a un error de BodyParser. Un tipo de documento desconocido dentro del
// cuerpo se informa como UNKNOWN_KIND; el resto es INVALID_BODY.
func invalidBody(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUnknownKind) {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
