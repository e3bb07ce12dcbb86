package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/invoice-composer/docs"
	"github.com/jhoicas/invoice-composer/internal/application/document"
	infrahtml "github.com/jhoicas/invoice-composer/internal/infrastructure/html"
	infrapdf "github.com/jhoicas/invoice-composer/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/invoice-composer/internal/interfaces/http"
	"github.com/jhoicas/invoice-composer/pkg/config"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
	"github.com/jhoicas/invoice-composer/pkg/logger"
)

// @title        Invoice Composer API
// @version      1.0
// @description  Composición y exportación de facturas y cotizaciones (HTML y PDF).
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	catalog, err := i18n.LoadCatalog(cfg.Render.LabelsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Render.LabelsPath).Msg("cargar etiquetas")
	}

	defaultLocale, err := catalog.Match(cfg.Render.DefaultLocale)
	if err != nil {
		log.Warn().Err(err).Str("default", catalog.Default()).Msg("idioma por defecto no soportado")
		defaultLocale = catalog.Default()
	}

	htmlRenderer, err := infrahtml.NewTemplateRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas HTML")
	}
	pdfGenerator := infrapdf.NewMarotoDocumentGenerator(cfg.Render.PDFAuthor)

	renderUC := document.NewRenderUseCase(catalog, htmlRenderer, pdfGenerator)
	editUC := document.NewEditUseCase(document.NewTemplates(time.Now))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs (swag init -g cmd/api/main.go)
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Invoice Composer API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		RenderUC:      renderUC,
		EditUC:        editUC,
		Catalog:       catalog,
		DefaultLocale: defaultLocale,
		Logger:        log,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Strs("locales", catalog.Supported()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
