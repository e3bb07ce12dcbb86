package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-composer/internal/application/document"
	"github.com/jhoicas/invoice-composer/internal/application/dto"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
	"github.com/jhoicas/invoice-composer/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName       string
	RenderUC      *document.RenderUseCase
	EditUC        *document.EditUseCase
	Catalog       *i18n.Catalog
	DefaultLocale string
	Logger        *logger.Logger // nil = sin log de peticiones
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}
	defaultLocale := deps.DefaultLocale
	if defaultLocale == "" {
		defaultLocale = deps.Catalog.Default()
	}

	app.Get("/health", health(deps.AppName, deps.Catalog))

	api := app.Group("/api")

	// Plantillas (cambio de tipo de documento)
	templateHandler := NewTemplateHandler(deps.EditUC)
	api.Get("/templates/:kind", templateHandler.Get)

	// Documentos: cálculo, validación, vista previa, exportación y edición de posiciones
	documents := api.Group("/documents", LocaleMiddleware(deps.Catalog, defaultLocale))
	documentHandler := NewDocumentHandler(deps.RenderUC, deps.EditUC)
	documents.Post("/totals", documentHandler.Totals)
	documents.Post("/validate", documentHandler.Validate)
	documents.Post("/preview", documentHandler.Preview)
	documents.Post("/pdf", documentHandler.PDF)
	documents.Post("/items", documentHandler.AddItem)
	documents.Put("/items/:index", documentHandler.UpdateItem)
	documents.Delete("/items/:index", documentHandler.RemoveItem)
}

// health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func health(appName string, catalog *i18n.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: appName, Locales: catalog.Supported()})
	}
}
