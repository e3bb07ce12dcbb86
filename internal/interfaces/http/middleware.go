package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/invoice-composer/internal/application/dto"
	"github.com/jhoicas/invoice-composer/pkg/logger"
)

// HeaderRequestID cabecera de correlación de peticiones.
const HeaderRequestID = "X-Request-ID"

// Locals keys para el id de petición y el idioma resuelto en Fiber.
const (
	LocalRequestID = "request_id"
	LocalLocale    = "locale"
)

// LocaleResolver resuelve el idioma de una petición (implementado por *i18n.Catalog).
type LocaleResolver interface {
	Match(tag string) (string, error)
	MatchAcceptLanguage(header string) (string, bool)
}

// RequestLogger asigna un X-Request-ID (o respeta el recibido) y registra cada petición
// con método, ruta, estado y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set(HeaderRequestID, requestID)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("petición HTTP")
		return err
	}
}

// LocaleMiddleware resuelve el idioma y lo deja en c.Locals.
// Orden: ?locale= (explícito; si no está soportado responde 400), Accept-Language
// (si no coincide se ignora) y por último defaultLocale.
func LocaleMiddleware(resolver LocaleResolver, defaultLocale string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale := defaultLocale
		if q := c.Query("locale"); q != "" {
			tag, err := resolver.Match(q)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_LOCALE", Message: "idioma no soportado: " + q})
			}
			locale = tag
		} else if tag, ok := resolver.MatchAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage)); ok {
			locale = tag
		}
		c.Locals(LocalLocale, locale)
		c.Set(fiber.HeaderContentLanguage, locale)
		return c.Next()
	}
}

// GetRequestID devuelve el id de petición (después de RequestLogger).
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetLocale devuelve el idioma resuelto (después de LocaleMiddleware).
func GetLocale(c *fiber.Ctx) string {
	v := c.Locals(LocalLocale)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
