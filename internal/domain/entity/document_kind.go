package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/invoice-composer/internal/domain"
)

// DocumentKind discrimina entre factura y cotización.
// Define las etiquetas y el significado del campo PaymentTerms.
type DocumentKind string

const (
	KindInvoice DocumentKind = "INVOICE"
	KindQuote   DocumentKind = "QUOTE"
)

// Kinds lista los tipos soportados en orden de presentación.
var Kinds = []DocumentKind{KindInvoice, KindQuote}

// Valid indica si el tipo es uno de los soportados.
func (k DocumentKind) Valid() bool {
	return k == KindInvoice || k == KindQuote
}

// IsQuote es true para cotizaciones (PaymentTerms se interpreta como fecha ISO "válida hasta").
func (k DocumentKind) IsQuote() bool { return k == KindQuote }

func (k DocumentKind) String() string { return string(k) }

// ParseDocumentKind acepta "invoice"/"INVOICE"/"quote"/"QUOTE".
func ParseDocumentKind(s string) (DocumentKind, error) {
	k := DocumentKind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownKind, s)
	}
	return k, nil
}

func (k DocumentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(k))
}

func (k *DocumentKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseDocumentKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
