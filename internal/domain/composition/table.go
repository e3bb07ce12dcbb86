package composition

import (
	"github.com/jhoicas/invoice-composer/internal/domain/billing"
	"github.com/jhoicas/invoice-composer/internal/domain/entity"
	"github.com/jhoicas/invoice-composer/pkg/format"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
)

// MinusSign signo tipográfico (U+2212) que antecede al descuento.
const MinusSign = "−"

// SummaryRole identifica una fila del pie de la tabla.
type SummaryRole string

const (
	RoleSubtotal SummaryRole = "subtotal"
	RoleDiscount SummaryRole = "discount"
	RoleTotal    SummaryRole = "total"
)

// TableColumns encabezados de columna.
type TableColumns struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Total       string `json:"total"`
}

// TableRow una posición ya formateada.
type TableRow struct {
	DescriptionLines []string `json:"descriptionLines"`
	Quantity         string   `json:"quantity"`
	UnitPrice        string   `json:"unitPrice"`
	Total            string   `json:"total"`
}

// SummaryRow fila de subtotal, descuento o total.
type SummaryRow struct {
	Role SummaryRole `json:"role"`
	Field
}

// TableSection tabla de posiciones con sus filas de resumen.
type TableSection struct {
	Columns TableColumns `json:"columns"`
	Rows    []TableRow   `json:"rows"`
	Summary []SummaryRow `json:"summary"`
}

// Table ejecuta el motor de cálculo y proyecta una fila por posición en el orden de entrada.
// Subtotal y descuento solo aparecen con descuento > 0; si no, queda solo la fila de total.
func Table(doc *entity.Document, labels i18n.Labels) TableSection {
	doc = orEmpty(doc)
	totals := billing.Compute(doc)

	rows := make([]TableRow, len(totals.Items))
	for i, it := range totals.Items {
		rows[i] = TableRow{
			DescriptionLines: splitLines(it.Description),
			Quantity:         format.Quantity(it.Quantity),
			UnitPrice:        format.Currency(it.UnitPrice),
			Total:            format.Currency(*it.Total),
		}
	}

	breakdown := totals.HasDiscount()
	summary := []struct {
		role SummaryRole
		spec fieldSpec
	}{
		{RoleSubtotal, fieldSpec{when: breakdown, key: i18n.KeySubtotal, value: format.Currency(totals.Subtotal)}},
		{RoleDiscount, fieldSpec{when: breakdown, key: i18n.KeyDiscount, label: doc.DiscountLabel, value: MinusSign + format.Currency(totals.Discount)}},
		{RoleTotal, fieldSpec{when: true, key: keysFor(doc.Kind).total, value: format.Currency(totals.GrandTotal)}},
	}

	out := TableSection{
		Columns: TableColumns{
			Description: labels.Get(i18n.KeyDescription),
			Quantity:    quantityHeader(doc.LineItems, labels),
			UnitPrice:   labels.Get(i18n.KeyUnitPrice),
			Total:       labels.Get(i18n.KeyTotal),
		},
		Rows: rows,
	}
	for _, s := range summary {
		if f, ok := s.spec.resolve(labels); ok {
			out.Summary = append(out.Summary, SummaryRow{Role: s.role, Field: f})
		}
	}
	return out
}

// quantityHeader toma la unidad de la primera posición como encabezado de todo el documento.
func quantityHeader(items []entity.LineItem, labels i18n.Labels) string {
	if len(items) > 0 && items[0].UnitLabel != "" {
		return items[0].UnitLabel
	}
	return labels.Get(i18n.KeyQuantity)
}
