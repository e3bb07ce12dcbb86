// Package composition proyecta un Document y una tabla de etiquetas en una vista
// de tres secciones (encabezado, tabla, pie).
//
// Cada etapa es una función pura: no modifica el documento, no guarda estado y
// recalcula por sí misma lo que necesita. Componer dos veces el mismo documento
// produce exactamente la misma vista.
package composition

import (
	"strings"

	"github.com/jhoicas/invoice-composer/internal/domain/entity"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
)

// DocumentID identificador estable del documento compuesto.
const DocumentID = "invoice-document"

// View documento compuesto listo para un adaptador de salida (HTML, PDF).
type View struct {
	ID        string              `json:"id"`
	AriaLabel string              `json:"ariaLabel"`
	Locale    string              `json:"locale"`
	Kind      entity.DocumentKind `json:"kind"`
	DocNumber string              `json:"docNumber"`
	Header    HeaderSection       `json:"header"`
	Table     TableSection        `json:"table"`
	Footer    FooterSection       `json:"footer"`
}

// Compose ejecuta las tres etapas en orden sobre la misma instantánea.
func Compose(doc *entity.Document, locale string, labels i18n.Labels) View {
	doc = orEmpty(doc)
	k := keysFor(doc.Kind)
	return View{
		ID:        DocumentID,
		AriaLabel: strings.TrimSpace(labels.Get(k.name) + " " + doc.DocNumber),
		Locale:    locale,
		Kind:      doc.Kind,
		DocNumber: doc.DocNumber,
		Header:    Header(doc, labels),
		Table:     Table(doc, labels),
		Footer:    Footer(doc, labels),
	}
}

// kindKeys claves de etiqueta que cambian según el tipo de documento.
type kindKeys struct {
	name, title, number, terms, total i18n.Key
}

var (
	invoiceKeys = kindKeys{
		name:   i18n.KeyInvoice,
		title:  i18n.KeyInvoiceTitle,
		number: i18n.KeyInvoiceNr,
		terms:  i18n.KeyPaymentTermsLabel,
		total:  i18n.KeyGrandTotalLabel,
	}
	quoteKeys = kindKeys{
		name:   i18n.KeyQuote,
		title:  i18n.KeyQuoteTitle,
		number: i18n.KeyQuoteNr,
		terms:  i18n.KeyValidUntilLabel,
		total:  i18n.KeyQuoteTotalLabel,
	}
)

// keysFor todo lo que no es cotización se etiqueta como factura.
func keysFor(kind entity.DocumentKind) kindKeys {
	if kind.IsQuote() {
		return quoteKeys
	}
	return invoiceKeys
}

var emptyDocument = entity.Document{}

func orEmpty(doc *entity.Document) *entity.Document {
	if doc == nil {
		d := emptyDocument
		return &d
	}
	return doc
}

// splitLines conserva los saltos de línea como separadores de párrafo.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
