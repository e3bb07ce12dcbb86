package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-composer/internal/domain/composition"
	"github.com/jhoicas/invoice-composer/internal/domain/entity"
	"github.com/jhoicas/invoice-composer/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
)

func composeView(t *testing.T, doc *entity.Document, locale string) composition.View {
	t.Helper()
	labels, err := i18n.NewCatalog().Lookup(locale)
	require.NoError(t, err)
	return composition.Compose(doc, locale, labels)
}

func fullDocument() *entity.Document {
	discount := decimal.RequireFromString("100.50")
	return &entity.Document{
		Kind:         entity.KindQuote,
		DocNumber:    "QUOT-2025-0011",
		IssueDate:    "2025-03-15",
		PaymentTerms: "2025-03-29",
		Period:       "01.03.2025 – 31.03.2025",
		Sender: entity.Sender{
			Address: entity.Address{Name: "Alex Studio GmbH", Street: "Musterstraße", HouseNumber: "12", PostalCode: "10115", City: "Berlin"},
			Phone:   "+49 30 1234567", TaxID: "DE123456789",
			BankOwner: "Alex Studio GmbH", IBAN: "DE89 3704 0044 0532 0130 00", BIC: "COBADEFFXXX", BankName: "Commerzbank Berlin",
		},
		Recipient: entity.Recipient{
			Address:        entity.Address{Name: "Musterfirma AG", Street: "Beispielweg", HouseNumber: "7", PostalCode: "20095", City: "Hamburg", Country: "Deutschland"},
			CustomerNumber: "KD-0815",
		},
		LineItems: []entity.LineItem{
			{Description: "UI/UX Design\nWireframes, Figma-Designs", Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(900)},
			{Description: "Projektmanagement", UnitLabel: "Std.", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(150)},
		},
		DiscountAmount:    &discount,
		Notes:             "Vielen Dank!\n\nMit freundlichen Grüßen",
		SmallBusinessNote: true,
	}
}

func TestGenerateDocumentPDF_DocumentoCompleto(t *testing.T) {
	g := pdf.NewMarotoDocumentGenerator("Alex Studio GmbH")

	data, err := g.GenerateDocumentPDF(context.Background(), composeView(t, fullDocument(), "de"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateDocumentPDF_DocumentoMinimo(t *testing.T) {
	doc := &entity.Document{
		Kind:      entity.KindInvoice,
		DocNumber: "INV-1",
		LineItems: []entity.LineItem{{Description: "A", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)}},
	}
	data, err := pdf.NewMarotoDocumentGenerator("").GenerateDocumentPDF(context.Background(), composeView(t, doc, "en"))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateDocumentPDF_MuchasPosiciones(t *testing.T) {
	doc := fullDocument()
	for i := 0; i < 80; i++ {
		doc.LineItems = append(doc.LineItems, entity.LineItem{
			Description: "Zeile", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10),
		})
	}
	data, err := pdf.NewMarotoDocumentGenerator("").GenerateDocumentPDF(context.Background(), composeView(t, doc, "de"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
