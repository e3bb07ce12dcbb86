package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/invoice-composer/internal/domain"
)

// FieldError describe un problema en un campo concreto del documento.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate revisa el documento a nivel de esquema (campos obligatorios, montos no negativos,
// al menos una posición). Es orientativa para el editor: el pipeline de composición nunca la
// invoca y renderiza igualmente un documento que no la supera.
//
// Devuelve nil o un error que envuelve domain.ErrInvalidDocument y todos los *FieldError encontrados.
func (d *Document) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: documento nulo", domain.ErrInvalidDocument)
	}
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, &FieldError{Field: field, Message: msg})
	}

	if !d.Kind.Valid() {
		add("kind", "debe ser INVOICE o QUOTE")
	}
	if blank(d.DocNumber) {
		add("docNumber", "es obligatorio")
	}
	if blank(d.IssueDate) {
		add("issueDate", "es obligatoria")
	} else if _, err := time.Parse(time.DateOnly, d.IssueDate); err != nil {
		add("issueDate", "debe tener formato YYYY-MM-DD")
	}

	validateAddress("sender", d.Sender.Address, add)
	validateAddress("recipient", d.Recipient.Address, add)

	if len(d.LineItems) == 0 {
		add("lineItems", "debe contener al menos una posición")
	}
	for i, it := range d.LineItems {
		if it.Quantity.IsNegative() {
			add(fmt.Sprintf("lineItems[%d].quantity", i), "no puede ser negativa")
		}
		if it.UnitPrice.IsNegative() {
			add(fmt.Sprintf("lineItems[%d].unitPrice", i), "no puede ser negativo")
		}
	}
	if d.DiscountAmount != nil && d.DiscountAmount.IsNegative() {
		add("discountAmount", "no puede ser negativo")
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrInvalidDocument}, errs...)...)
	}
	return nil
}

// FieldErrors extrae los *FieldError de un error devuelto por Validate.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var out []*FieldError
	var fe *FieldError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if errors.As(e, &fe) {
				out = append(out, fe)
			}
		}
		return out
	}
	if errors.As(err, &fe) {
		out = append(out, fe)
	}
	return out
}

func validateAddress(prefix string, a Address, add func(field, msg string)) {
	required := []struct {
		field, value string
	}{
		{"name", a.Name},
		{"street", a.Street},
		{"houseNumber", a.HouseNumber},
		{"postalCode", a.PostalCode},
		{"city", a.City},
	}
	for _, r := range required {
		if blank(r.value) {
			add(prefix+"."+r.field, "es obligatorio")
		}
	}
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
