// Package i18n resuelve un tag de idioma a una tabla plana de etiquetas de presentación.
// Las tablas se inyectan en la composición (no hay singleton global).
package i18n

// Key identifica una etiqueta. Se usan claves snake_case para que los archivos
// de sobreescritura leídos con Viper (que pasa claves a minúsculas) coincidan.
type Key string

// =============================================================================
// Títulos y nombres de tipo de documento
// =============================================================================

const (
	KeyInvoice      Key = "invoice"       // nombre corto del tipo (aria-label)
	KeyQuote        Key = "quote"         //
	KeyInvoiceTitle Key = "invoice_title" // título del encabezado
	KeyQuoteTitle   Key = "quote_title"   //
)

// =============================================================================
// Encabezado: metadatos del receptor y del emisor
// =============================================================================

const (
	KeyCustomerNr        Key = "customer_nr"
	KeyPeriodLabel       Key = "period_label"
	KeyInvoiceNr         Key = "invoice_nr"
	KeyQuoteNr           Key = "quote_nr"
	KeyPaymentTermsLabel Key = "payment_terms_label"
	KeyValidUntilLabel   Key = "valid_until_label"
	KeyTelLabel          Key = "tel_label"
	KeyEmailLabel        Key = "email_label"
	KeyWebLabel          Key = "web_label"
	KeyDateLabel         Key = "date_label"
)

// =============================================================================
// Tabla de posiciones y totales
// =============================================================================

const (
	KeyDescription     Key = "description"
	KeyQuantity        Key = "quantity"
	KeyUnitPrice       Key = "unit_price"
	KeyTotal           Key = "total"
	KeySubtotal        Key = "subtotal"
	KeyDiscount        Key = "discount"
	KeyGrandTotalLabel Key = "grand_total_label"
	KeyQuoteTotalLabel Key = "quote_total_label"
)

// =============================================================================
// Pie: datos bancarios y notas legales
// =============================================================================

const (
	KeyTaxNote      Key = "tax_note"
	KeyTaxIDLabel   Key = "tax_id_label"
	KeyAccountOwner Key = "account_owner"
	KeyIBANLabel    Key = "iban_label"
	KeyBICLabel     Key = "bic_label"
	KeyBankLabel    Key = "bank_label"
)

// Keys todas las claves que la composición necesita; cada idioma soportado debe definirlas.
var Keys = []Key{
	KeyInvoice, KeyQuote, KeyInvoiceTitle, KeyQuoteTitle,
	KeyCustomerNr, KeyPeriodLabel, KeyInvoiceNr, KeyQuoteNr, KeyPaymentTermsLabel, KeyValidUntilLabel,
	KeyTelLabel, KeyEmailLabel, KeyWebLabel, KeyDateLabel,
	KeyDescription, KeyQuantity, KeyUnitPrice, KeyTotal, KeySubtotal, KeyDiscount,
	KeyGrandTotalLabel, KeyQuoteTotalLabel,
	KeyTaxNote, KeyTaxIDLabel, KeyAccountOwner, KeyIBANLabel, KeyBICLabel, KeyBankLabel,
}

var german = Labels{
	KeyInvoice:      "Rechnung",
	KeyQuote:        "Angebot",
	KeyInvoiceTitle: "RECHNUNG",
	KeyQuoteTitle:   "ANGEBOT",

	KeyCustomerNr:        "Kundennr.:",
	KeyPeriodLabel:       "Zeitraum:",
	KeyInvoiceNr:         "Rechnungsnr.:",
	KeyQuoteNr:           "Angebotsnr.:",
	KeyPaymentTermsLabel: "Zahlungsziel:",
	KeyValidUntilLabel:   "Gültig bis:",
	KeyTelLabel:          "Tel.:",
	KeyEmailLabel:        "E-Mail:",
	KeyWebLabel:          "Web:",
	KeyDateLabel:         "Datum:",

	KeyDescription:     "Beschreibung",
	KeyQuantity:        "Menge",
	KeyUnitPrice:       "Einzelpreis",
	KeyTotal:           "Gesamt",
	KeySubtotal:        "Zwischensumme",
	KeyDiscount:        "Rabatt",
	KeyGrandTotalLabel: "Gesamtbetrag",
	KeyQuoteTotalLabel: "Angebotssumme",

	KeyTaxNote:      "Gemäß §19 UStG wird keine Umsatzsteuer ausgewiesen (Kleinunternehmerregelung).",
	KeyTaxIDLabel:   "Steuernummer / USt-IdNr.:",
	KeyAccountOwner: "Kontoinhaber:",
	KeyIBANLabel:    "IBAN:",
	KeyBICLabel:     "BIC:",
	KeyBankLabel:    "Bank:",
}

var english = Labels{
	KeyInvoice:      "Invoice",
	KeyQuote:        "Quote",
	KeyInvoiceTitle: "INVOICE",
	KeyQuoteTitle:   "QUOTE",

	KeyCustomerNr:        "Customer No.:",
	KeyPeriodLabel:       "Period:",
	KeyInvoiceNr:         "Invoice No.:",
	KeyQuoteNr:           "Quote No.:",
	KeyPaymentTermsLabel: "Payment Terms:",
	KeyValidUntilLabel:   "Valid Until:",
	KeyTelLabel:          "Tel.:",
	KeyEmailLabel:        "Email:",
	KeyWebLabel:          "Web:",
	KeyDateLabel:         "Date:",

	KeyDescription:     "Description",
	KeyQuantity:        "Qty",
	KeyUnitPrice:       "Unit Price",
	KeyTotal:           "Total",
	KeySubtotal:        "Subtotal",
	KeyDiscount:        "Discount",
	KeyGrandTotalLabel: "Total Amount",
	KeyQuoteTotalLabel: "Quote Total",

	KeyTaxNote:      "VAT not applicable under small business regulation.",
	KeyTaxIDLabel:   "Tax ID / VAT No.:",
	KeyAccountOwner: "Account Owner:",
	KeyIBANLabel:    "IBAN:",
	KeyBICLabel:     "BIC:",
	KeyBankLabel:    "Bank:",
}
