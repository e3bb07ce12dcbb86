package document_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-composer/internal/application/document"
	"github.com/jhoicas/invoice-composer/internal/domain"
	"github.com/jhoicas/invoice-composer/internal/domain/composition"
	"github.com/jhoicas/invoice-composer/internal/domain/entity"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeHTML struct{ last composition.View }

func (f *fakeHTML) RenderHTML(_ context.Context, view composition.View) ([]byte, error) {
	f.last = view
	return []byte("<article id=\"" + view.ID + "\">" + view.AriaLabel + "</article>"), nil
}

type fakePDF struct {
	last composition.View
	err  error
}

func (f *fakePDF) GenerateDocumentPDF(_ context.Context, view composition.View) ([]byte, error) {
	f.last = view
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3"), nil
}

func fixedClock() time.Time { return time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC) }

func newRender(pdf *fakePDF) (*document.RenderUseCase, *fakeHTML) {
	html := &fakeHTML{}
	return document.NewRenderUseCase(i18n.NewCatalog(), html, pdf), html
}

// ──────────────────────────────────────────────────────────────────────────────
// Plantillas
// ──────────────────────────────────────────────────────────────────────────────

func TestTemplates_DefaultInvoice(t *testing.T) {
	doc := document.NewTemplates(fixedClock).DefaultInvoice()

	assert.Equal(t, entity.KindInvoice, doc.Kind)
	assert.Equal(t, "2025-03-15", doc.IssueDate)
	assert.Equal(t, "14 Tage netto", doc.PaymentTerms)
	assert.Len(t, doc.LineItems, 3)
	assert.True(t, doc.Sender.HasBankDetails())
	assert.NoError(t, doc.Validate())
}

func TestTemplates_DefaultQuote_ValidezCatorceDias(t *testing.T) {
	doc := document.NewTemplates(fixedClock).DefaultQuote()

	assert.Equal(t, entity.KindQuote, doc.Kind)
	assert.Equal(t, "QUOT-2025-0011", doc.DocNumber)
	assert.Equal(t, "2025-03-29", doc.PaymentTerms)
	assert.NoError(t, doc.Validate())
}

func TestTemplates_ForKind(t *testing.T) {
	tpl := document.NewTemplates(fixedClock)

	doc, err := tpl.ForKind(entity.KindQuote)
	require.NoError(t, err)
	assert.Equal(t, entity.KindQuote, doc.Kind)

	_, err = tpl.ForKind(entity.DocumentKind("RECEIPT"))
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestTemplates_CadaLlamadaDevuelveUnDocumentoNuevo(t *testing.T) {
	tpl := document.NewTemplates(fixedClock)
	a := tpl.DefaultInvoice()
	a.LineItems[0].Description = "cambiado"

	b := tpl.DefaultInvoice()
	assert.NotEqual(t, "cambiado", b.LineItems[0].Description)
}

// ──────────────────────────────────────────────────────────────────────────────
// Render
// ──────────────────────────────────────────────────────────────────────────────

func TestRender_Compose(t *testing.T) {
	uc, _ := newRender(&fakePDF{})
	doc := document.NewTemplates(fixedClock).DefaultInvoice()

	view, err := uc.Compose(doc, "de-AT")
	require.NoError(t, err)
	assert.Equal(t, "de", view.Locale)
	assert.Equal(t, "RECHNUNG", view.Header.Title)
	assert.Equal(t, "Rechnung INV-2025-0042", view.AriaLabel)

	view, err = uc.Compose(doc, "en")
	require.NoError(t, err)
	assert.Equal(t, "INVOICE", view.Header.Title)
}

func TestRender_Compose_IdiomaDesconocido(t *testing.T) {
	uc, _ := newRender(&fakePDF{})
	_, err := uc.Compose(document.NewTemplates(fixedClock).DefaultInvoice(), "fr")
	assert.ErrorIs(t, err, i18n.ErrUnknownLocale)
}

func TestRender_PreviewHTML(t *testing.T) {
	uc, html := newRender(&fakePDF{})
	doc := document.NewTemplates(fixedClock).DefaultQuote()

	out, err := uc.PreviewHTML(context.Background(), doc, "")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Angebot QUOT-2025-0011")
	assert.Equal(t, "ANGEBOT", html.last.Header.Title)
}

func TestRender_ExportPDF(t *testing.T) {
	pdf := &fakePDF{}
	uc, _ := newRender(pdf)
	doc := document.NewTemplates(fixedClock).DefaultInvoice()

	data, filename, err := uc.ExportPDF(context.Background(), doc, "de")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))
	assert.Equal(t, "rechnung_INV-2025-0042.pdf", filename)
	assert.Equal(t, composition.DocumentID, pdf.last.ID)
}

func TestRender_ExportPDF_ErrorDelGenerador(t *testing.T) {
	boom := errors.New("sin fuentes")
	uc, _ := newRender(&fakePDF{err: boom})

	_, _, err := uc.ExportPDF(context.Background(), document.NewTemplates(fixedClock).DefaultInvoice(), "de")
	assert.ErrorIs(t, err, boom)
}

func TestRender_Totals(t *testing.T) {
	uc, _ := newRender(&fakePDF{})
	doc := document.NewTemplates(fixedClock).DefaultInvoice()
	discount := decimal.RequireFromString("100.50")
	doc.DiscountAmount = &discount

	got := uc.Totals(doc)
	require.Len(t, got.Items, 3)
	assert.Equal(t, "4500.00", got.Items[0].Total.StringFixed(2))
	assert.Equal(t, "12700.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, "12599.50", got.GrandTotal.StringFixed(2))
	assert.True(t, got.HasDiscount)
	assert.Equal(t, "12.599,50\u00a0€", got.GrandTotalDisplay)
	assert.Nil(t, doc.LineItems[0].Total, "el documento de entrada no se enriquece")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "angebot_QUOT-2025-0011.pdf", document.Filename(&entity.Document{Kind: entity.KindQuote, DocNumber: "QUOT-2025-0011"}, "pdf"))
	assert.Equal(t, "rechnung_RE_2025_1.html", document.Filename(&entity.Document{Kind: entity.KindInvoice, DocNumber: "RE/2025 #1"}, "html"))
	assert.Equal(t, "rechnung.pdf", document.Filename(&entity.Document{}, "pdf"))
	assert.Equal(t, "rechnung.pdf", document.Filename(nil, "pdf"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición
// ──────────────────────────────────────────────────────────────────────────────

func newEdit() *document.EditUseCase {
	return document.NewEditUseCase(document.NewTemplates(fixedClock))
}

func TestEdit_AddLineItem(t *testing.T) {
	doc := document.NewTemplates(fixedClock).DefaultInvoice()

	out, err := newEdit().AddLineItem(doc)
	require.NoError(t, err)
	require.Len(t, out.LineItems, 4)
	added := out.LineItems[3]
	assert.Equal(t, "", added.Description)
	assert.Equal(t, "Std.", added.UnitLabel)
	assert.True(t, added.Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, added.UnitPrice.IsZero())
	assert.Len(t, doc.LineItems, 3, "la instantánea original no cambia")
}

func TestEdit_RemoveLineItem(t *testing.T) {
	doc := document.NewTemplates(fixedClock).DefaultInvoice()

	out, err := newEdit().RemoveLineItem(doc, 1)
	require.NoError(t, err)
	require.Len(t, out.LineItems, 2)
	assert.Equal(t, "Projektmanagement & Abstimmungsgespräche", out.LineItems[1].Description)
	assert.Len(t, doc.LineItems, 3)
	assert.Equal(t, "Menge", doc.LineItems[1].UnitLabel, "la instantánea original no cambia")
}

func TestEdit_RemoveLineItem_NoQuitaLaUltima(t *testing.T) {
	doc := document.NewTemplates(fixedClock).DefaultInvoice()
	doc.LineItems = doc.LineItems[:1]

	_, err := newEdit().RemoveLineItem(doc, 0)
	assert.ErrorIs(t, err, domain.ErrLastLineItem)
}

func TestEdit_RemoveLineItem_IndiceFueraDeRango(t *testing.T) {
	doc := document.NewTemplates(fixedClock).DefaultInvoice()

	_, err := newEdit().RemoveLineItem(doc, 3)
	assert.ErrorIs(t, err, domain.ErrLineItemIndex)
	_, err = newEdit().RemoveLineItem(doc, -1)
	assert.ErrorIs(t, err, domain.ErrLineItemIndex)
}

func TestEdit_UpdateLineItem_DescartaElTotal(t *testing.T) {
	doc := document.NewTemplates(fixedClock).DefaultInvoice()
	stale := decimal.NewFromInt(1)

	out, err := newEdit().UpdateLineItem(doc, 2, entity.LineItem{
		Description: "Workshop",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.NewFromInt(300),
		Total:       &stale,
	})
	require.NoError(t, err)
	assert.Equal(t, "Workshop", out.LineItems[2].Description)
	assert.Nil(t, out.LineItems[2].Total)
	assert.Equal(t, "Projektmanagement & Abstimmungsgespräche", doc.LineItems[2].Description)
}

func TestEdit_UpdateLineItem_Negativo(t *testing.T) {
	doc := document.NewTemplates(fixedClock).DefaultInvoice()
	_, err := newEdit().UpdateLineItem(doc, 0, entity.LineItem{Quantity: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEdit_SetKind_ReemplazaElDocumento(t *testing.T) {
	out, err := newEdit().SetKind(entity.KindQuote)
	require.NoError(t, err)
	assert.Equal(t, entity.KindQuote, out.Kind)
	assert.Equal(t, "2025-03-29", out.PaymentTerms)
}

func TestEdit_DocumentoNil(t *testing.T) {
	_, err := newEdit().AddLineItem(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
