// Package billing es el motor de cálculo de posiciones y totales (servicio de dominio puro).
//
// Todos los montos derivados se redondean a 2 decimales en cada frontera
// (total de línea, subtotal, total general) para que el redondeo repetido sea
// idempotente y coincida con lo que se muestra.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-composer/internal/domain/entity"
)

// Totals agrupa el resultado de un pase de cálculo sobre un documento.
type Totals struct {
	Items      []entity.LineItem
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	GrandTotal decimal.Decimal
}

// HasDiscount indica si se deben mostrar las filas de subtotal y descuento.
func (t Totals) HasDiscount() bool { return t.Discount.IsPositive() }

// Round2 redondea a 2 decimales (mitad alejándose de cero).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// LineTotal = round2(cantidad × precio unitario).
func LineTotal(item entity.LineItem) decimal.Decimal {
	return Round2(item.Quantity.Mul(item.UnitPrice))
}

// EnrichLineItems devuelve una nueva secuencia donde cada Total se sobrescribe con
// round2(cantidad × precio), ignorando cualquier valor previo. Conserva longitud y orden
// y no modifica la entrada.
func EnrichLineItems(items []entity.LineItem) []entity.LineItem {
	out := make([]entity.LineItem, len(items))
	for i, it := range items {
		total := LineTotal(it)
		it.Total = &total
		out[i] = it
	}
	return out
}

// ComputeSubtotal = round2(Σ total_i) sobre posiciones ya enriquecidas.
// Una posición sin Total (no enriquecida) aporta round2(cantidad × precio).
// Una secuencia vacía da 0: el motor no exige la invariante de "al menos una posición".
func ComputeSubtotal(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		if it.Total != nil {
			sum = sum.Add(*it.Total)
			continue
		}
		sum = sum.Add(LineTotal(it))
	}
	return Round2(sum)
}

// ComputeGrandTotal = round2(subtotal − (descuento ?? 0)). Puede ser negativo; no se recorta a cero.
func ComputeGrandTotal(subtotal decimal.Decimal, discount *decimal.Decimal) decimal.Decimal {
	d := decimal.Zero
	if discount != nil {
		d = *discount
	}
	return Round2(subtotal.Sub(d))
}

// DiscountOf devuelve el descuento absoluto del documento (0 si no hay).
func DiscountOf(doc *entity.Document) decimal.Decimal {
	if doc == nil || doc.DiscountAmount == nil {
		return decimal.Zero
	}
	return *doc.DiscountAmount
}

// Compute ejecuta el pase completo: enriquecimiento, subtotal y total general.
func Compute(doc *entity.Document) Totals {
	if doc == nil {
		return Totals{Items: []entity.LineItem{}}
	}
	items := EnrichLineItems(doc.LineItems)
	subtotal := ComputeSubtotal(items)
	return Totals{
		Items:      items,
		Subtotal:   subtotal,
		Discount:   DiscountOf(doc),
		GrandTotal: ComputeGrandTotal(subtotal, doc.DiscountAmount),
	}
}
