package document

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-composer/internal/domain"
	"github.com/jhoicas/invoice-composer/internal/domain/entity"
	"github.com/jhoicas/invoice-composer/pkg/format"
)

// quoteValidityDays días de validez por defecto de una cotización.
const quoteValidityDays = 14

// Templates construye los documentos de partida. El reloj es inyectable para los tests.
type Templates struct {
	now func() time.Time
}

// NewTemplates construye el proveedor de plantillas; now nil usa time.Now.
func NewTemplates(now func() time.Time) *Templates {
	if now == nil {
		now = time.Now
	}
	return &Templates{now: now}
}

// DefaultInvoice factura de ejemplo con fecha de hoy.
func (t *Templates) DefaultInvoice() *entity.Document {
	today := format.Today(t.now())
	return &entity.Document{
		Kind:         entity.KindInvoice,
		DocNumber:    "INV-2025-0042",
		IssueDate:    today,
		PaymentTerms: "14 Tage netto",
		Period:       "01.03.2025 – 31.03.2025",
		Sender:       demoSender(),
		Recipient:    demoRecipient(),
		LineItems:    demoLineItems(),
		Notes: "Vielen Dank für Ihr Vertrauen. Bei Fragen stehe ich jederzeit zur Verfügung.\n\n" +
			"Mit freundlichen Grüßen\nAlex Studio GmbH",
	}
}

// DefaultQuote cotización de ejemplo; las condiciones son la fecha de validez (hoy + 14 días).
func (t *Templates) DefaultQuote() *entity.Document {
	doc := t.DefaultInvoice()
	doc.Kind = entity.KindQuote
	doc.DocNumber = "QUOT-2025-0011"
	doc.PaymentTerms = format.AddDays(doc.IssueDate, quoteValidityDays)
	doc.Notes = "Ich freue mich auf eine erfolgreiche Zusammenarbeit!\n\n" +
		"Mit freundlichen Grüßen\nAlex Studio GmbH"
	return doc
}

// ForKind devuelve la plantilla completa del tipo pedido. Cambiar de tipo reemplaza
// el documento entero; no se conservan datos del anterior.
func (t *Templates) ForKind(kind entity.DocumentKind) (*entity.Document, error) {
	switch kind {
	case entity.KindInvoice:
		return t.DefaultInvoice(), nil
	case entity.KindQuote:
		return t.DefaultQuote(), nil
	default:
		return nil, domain.ErrUnknownKind
	}
}

// NewLineItem posición en blanco que agrega el editor.
func NewLineItem() entity.LineItem {
	return entity.LineItem{
		UnitLabel: "Std.",
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.Zero,
	}
}

func demoSender() entity.Sender {
	return entity.Sender{
		Address: entity.Address{
			Name:        "Alex Studio GmbH",
			Street:      "Musterstraße",
			HouseNumber: "12",
			PostalCode:  "10115",
			City:        "Berlin",
			Country:     "Deutschland",
		},
		Phone:     "+49 30 1234567",
		Email:     "hallo@alex-studio.de",
		Website:   "alex-studio.de",
		TaxID:     "DE123456789",
		BankOwner: "Alex Studio GmbH",
		IBAN:      "DE89 3704 0044 0532 0130 00",
		BIC:       "COBADEFFXXX",
		BankName:  "Commerzbank Berlin",
	}
}

func demoRecipient() entity.Recipient {
	return entity.Recipient{
		Address: entity.Address{
			Name:        "Musterfirma AG",
			Street:      "Beispielweg",
			HouseNumber: "7",
			PostalCode:  "20095",
			City:        "Hamburg",
			Country:     "Deutschland",
		},
		Email:          "buchhaltung@musterfirma.de",
		CustomerNumber: "KD-0815",
	}
}

func demoLineItems() []entity.LineItem {
	return []entity.LineItem{
		{
			Description: "UI/UX Design – Konzeption & Prototyping\nWireframes, Figma-Designs, Interaktionsprototyp",
			Quantity:    decimal.NewFromInt(5),
			UnitPrice:   decimal.NewFromInt(900),
		},
		{
			Description: "Frontend-Entwicklung (React / Next.js)\nKomponentenbibliothek, responsive Layout, Animationen",
			UnitLabel:   "Menge",
			Quantity:    decimal.NewFromInt(8),
			UnitPrice:   decimal.NewFromInt(950),
		},
		{
			Description: "Projektmanagement & Abstimmungsgespräche",
			UnitLabel:   "Std.",
			Quantity:    decimal.NewFromInt(4),
			UnitPrice:   decimal.NewFromInt(150),
		},
	}
}
