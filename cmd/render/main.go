package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/jhoicas/invoice-composer/internal/application/document"
	"github.com/jhoicas/invoice-composer/internal/domain"
	"github.com/jhoicas/invoice-composer/internal/domain/entity"
	infrahtml "github.com/jhoicas/invoice-composer/internal/infrastructure/html"
	infrapdf "github.com/jhoicas/invoice-composer/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
	"github.com/jhoicas/invoice-composer/pkg/logger"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, time.Now); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run renderiza un documento JSON (o la plantilla de --kind) como html, pdf o view (JSON compuesto).
// --out vacío: html y view van a stdout; pdf a un archivo con el nombre sugerido. "-" fuerza stdout.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, now func() time.Time) error {
	fs := ff.NewFlagSet("render")
	var (
		inPath   = fs.StringLong("in", "", "documento JSON de entrada (vacío = plantilla de --kind)")
		kindName = fs.StringLong("kind", "invoice", "tipo de plantilla: invoice o quote")
		locale   = fs.StringLong("locale", "de", "idioma de las etiquetas (de, en)")
		format   = fs.StringLong("format", "pdf", "formato de salida: html, pdf o view")
		outPath  = fs.StringLong("out", "", "archivo de salida (- = stdout)")
		labels   = fs.StringLong("labels", "", "YAML con etiquetas que sobreescriben las integradas")
		author   = fs.StringLong("author", "", "metadato Author del PDF")
		logLevel = fs.StringLong("log-level", "info", "nivel de log")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("RENDER")); err != nil {
		if errors.Is(err, ff.ErrHelp) {
			fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
			return nil
		}
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		return err
	}

	log := logger.New(logger.Config{Env: "development", Level: *logLevel, Service: "render", Out: stderr})

	catalog, err := i18n.LoadCatalog(*labels)
	if err != nil {
		return err
	}
	doc, err := loadDocument(*inPath, *kindName, document.NewTemplates(now))
	if err != nil {
		return err
	}

	var (
		out      []byte
		filename string
	)
	switch strings.ToLower(*format) {
	case "html":
		renderer, err := infrahtml.NewTemplateRenderer()
		if err != nil {
			return err
		}
		uc := document.NewRenderUseCase(catalog, renderer, nil)
		if out, err = uc.PreviewHTML(ctx, doc, *locale); err != nil {
			return err
		}
	case "pdf":
		uc := document.NewRenderUseCase(catalog, nil, infrapdf.NewMarotoDocumentGenerator(*author))
		if out, filename, err = uc.ExportPDF(ctx, doc, *locale); err != nil {
			return err
		}
	case "view":
		uc := document.NewRenderUseCase(catalog, nil, nil)
		view, err := uc.Compose(doc, *locale)
		if err != nil {
			return err
		}
		if out, err = json.MarshalIndent(view, "", "  "); err != nil {
			return err
		}
		out = append(out, '\n')
	default:
		return fmt.Errorf("%w: %q (html, pdf o view)", domain.ErrUnsupportedFormat, *format)
	}

	target := *outPath
	if target == "" {
		target = filename
	}
	if target == "" || target == "-" {
		_, err = stdout.Write(out)
		return err
	}
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("render: escribir %s: %w", target, err)
	}
	log.Info().
		Str("kind", doc.Kind.String()).
		Str("doc_number", doc.DocNumber).
		Str("locale", *locale).
		Str("out", target).
		Int("bytes", len(out)).
		Msg("documento renderizado")
	return nil
}

func loadDocument(path, kindName string, templates *document.Templates) (*entity.Document, error) {
	if path == "" {
		kind, err := entity.ParseDocumentKind(kindName)
		if err != nil {
			return nil, err
		}
		return templates.ForKind(kind)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: leer %s: %w", path, err)
	}
	var doc entity.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("render: %s: %w", path, err)
	}
	return &doc, nil
}
