package document

import (
	"context"

	"github.com/jhoicas/invoice-composer/internal/domain/composition"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
)

// HTMLRenderer puerto de salida: vista compuesta → documento HTML imprimible.
type HTMLRenderer interface {
	RenderHTML(ctx context.Context, view composition.View) ([]byte, error)
}

// PDFGenerator puerto de salida: vista compuesta → PDF A4.
// La exportación captura la vista tal cual; no recalcula nada.
type PDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, view composition.View) ([]byte, error)
}

// LabelCatalog resuelve un tag de idioma a su tabla de etiquetas.
type LabelCatalog interface {
	Match(tag string) (string, error)
	Lookup(tag string) (i18n.Labels, error)
}
