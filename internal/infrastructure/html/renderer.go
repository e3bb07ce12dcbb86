// Package html implementa document.HTMLRenderer: la vista imprimible (A4) del documento
// compuesto, con el mismo marcado (header / table / footer) que usa la vista previa.
package html

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/jhoicas/invoice-composer/internal/domain/composition"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// TemplateRenderer ejecuta la plantilla embebida sobre una composition.View.
// La plantilla se parsea una sola vez; el renderer es seguro para uso concurrente.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer parsea la plantilla embebida.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	tmpl, err := template.New("document.html.tmpl").ParseFS(templatesFS, "templates/document.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("html: parsear plantilla: %w", err)
	}
	return &TemplateRenderer{tmpl: tmpl}, nil
}

// RenderHTML escribe el documento completo. No modifica la vista.
func (r *TemplateRenderer) RenderHTML(_ context.Context, view composition.View) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("html: ejecutar plantilla: %w", err)
	}
	return buf.Bytes(), nil
}
