package composition

import (
	"strings"

	"github.com/jhoicas/invoice-composer/internal/domain/entity"
	"github.com/jhoicas/invoice-composer/pkg/format"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
)

// HeaderSection encabezado: título, bloque del receptor con metadatos del documento
// y bloque del emisor con contacto y fecha.
type HeaderSection struct {
	Title          string   `json:"title"`
	BrandLine      string   `json:"brandLine"`
	RecipientLines []string `json:"recipientLines"`
	RecipientMeta  []Field  `json:"recipientMeta"`
	SenderLines    []string `json:"senderLines"`
	SenderMeta     []Field  `json:"senderMeta"`
}

// Header proyecta el encabezado. En una cotización las condiciones son una fecha
// de validez y se formatean; en una factura se muestran tal cual.
func Header(doc *entity.Document, labels i18n.Labels) HeaderSection {
	doc = orEmpty(doc)
	k := keysFor(doc.Kind)

	terms := doc.PaymentTerms
	if doc.Kind.IsQuote() {
		terms = format.Date(terms)
	}

	return HeaderSection{
		Title:          labels.Get(k.title),
		BrandLine:      doc.Sender.Name,
		RecipientLines: recipientLines(doc.Recipient),
		RecipientMeta: resolveFields(labels, []fieldSpec{
			present(i18n.KeyCustomerNr, doc.Recipient.CustomerNumber),
			present(i18n.KeyPeriodLabel, doc.Period),
			always(k.number, doc.DocNumber),
			present(k.terms, terms),
		}),
		SenderLines: senderLines(doc.Sender),
		SenderMeta: resolveFields(labels, []fieldSpec{
			present(i18n.KeyTelLabel, doc.Sender.Phone),
			present(i18n.KeyEmailLabel, doc.Sender.Email),
			present(i18n.KeyWebLabel, doc.Sender.Website),
			always(i18n.KeyDateLabel, format.Date(doc.IssueDate)),
		}),
	}
}

func recipientLines(r entity.Recipient) []string {
	city := joinNonEmpty(" ", r.PostalCode, r.City)
	if r.Country != "" {
		city += ", " + r.Country
	}
	return []string{r.Name, joinNonEmpty(" ", r.Street, r.HouseNumber), city}
}

func senderLines(s entity.Sender) []string {
	return []string{s.Name, joinNonEmpty(" ", s.Street, s.HouseNumber), joinNonEmpty(" ", s.PostalCode, s.City)}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
