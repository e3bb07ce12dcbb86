package document

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/invoice-composer/internal/application/dto"
	"github.com/jhoicas/invoice-composer/internal/domain/billing"
	"github.com/jhoicas/invoice-composer/internal/domain/composition"
	"github.com/jhoicas/invoice-composer/internal/domain/entity"
	"github.com/jhoicas/invoice-composer/pkg/format"
)

// RenderUseCase compone instantáneas de documento y las entrega a los adaptadores de salida.
// No guarda estado entre llamadas: cada pase trabaja sobre la instantánea recibida.
type RenderUseCase struct {
	catalog LabelCatalog
	html    HTMLRenderer
	pdf     PDFGenerator
}

// NewRenderUseCase construye el caso de uso inyectando sus dependencias.
func NewRenderUseCase(catalog LabelCatalog, html HTMLRenderer, pdf PDFGenerator) *RenderUseCase {
	return &RenderUseCase{catalog: catalog, html: html, pdf: pdf}
}

// Compose resuelve el idioma y ejecuta las tres etapas sobre una copia del documento.
func (uc *RenderUseCase) Compose(doc *entity.Document, locale string) (composition.View, error) {
	tag, err := uc.catalog.Match(locale)
	if err != nil {
		return composition.View{}, err
	}
	labels, err := uc.catalog.Lookup(tag)
	if err != nil {
		return composition.View{}, err
	}
	return composition.Compose(doc.Clone(), tag, labels), nil
}

// PreviewHTML devuelve la vista imprimible en HTML.
func (uc *RenderUseCase) PreviewHTML(ctx context.Context, doc *entity.Document, locale string) ([]byte, error) {
	view, err := uc.Compose(doc, locale)
	if err != nil {
		return nil, err
	}
	out, err := uc.html.RenderHTML(ctx, view)
	if err != nil {
		return nil, fmt.Errorf("render: html: %w", err)
	}
	return out, nil
}

// ExportPDF genera el PDF y el nombre de archivo sugerido.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - i18n.ErrUnknownLocale      si el idioma no está soportado.
//   - error envuelto             si el generador falla.
func (uc *RenderUseCase) ExportPDF(ctx context.Context, doc *entity.Document, locale string) (pdfBytes []byte, filename string, err error) {
	view, err := uc.Compose(doc, locale)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.pdf.GenerateDocumentPDF(ctx, view)
	if err != nil {
		return nil, "", fmt.Errorf("render: pdf: %w", err)
	}
	return pdfBytes, Filename(doc, "pdf"), nil
}

// Totals ejecuta solo el motor de cálculo (panel de resumen del editor).
func (uc *RenderUseCase) Totals(doc *entity.Document) dto.TotalsResponse {
	t := billing.Compute(doc)
	items := make([]dto.LineTotalDTO, len(t.Items))
	for i, it := range t.Items {
		items[i] = dto.LineTotalDTO{
			Index:        i,
			Description:  it.Description,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Total:        *it.Total,
			TotalDisplay: format.Currency(*it.Total),
		}
	}
	return dto.TotalsResponse{
		Items:             items,
		Subtotal:          t.Subtotal,
		Discount:          t.Discount,
		GrandTotal:        t.GrandTotal,
		HasDiscount:       t.HasDiscount(),
		SubtotalDisplay:   format.Currency(t.Subtotal),
		DiscountDisplay:   format.Currency(t.Discount),
		GrandTotalDisplay: format.Currency(t.GrandTotal),
	}
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename nombre de archivo a partir del tipo y número: "rechnung_INV-2025-0042.pdf".
func Filename(doc *entity.Document, ext string) string {
	prefix := "rechnung"
	number := ""
	if doc != nil {
		if doc.Kind.IsQuote() {
			prefix = "angebot"
		}
		number = strings.Trim(unsafeFilename.ReplaceAllString(doc.DocNumber, "_"), "_.")
	}
	if number == "" {
		return prefix + "." + ext
	}
	return prefix + "_" + number + "." + ext
}
