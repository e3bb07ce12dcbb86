package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-composer/internal/domain/entity"
)

// ── Edición ───────────────────────────────────────────────────────────────────

// LineItemEditRequest body para POST/PUT/DELETE /api/documents/items.
// Document es la instantánea actual; Item solo se usa en PUT.
type LineItemEditRequest struct {
	Document entity.Document  `json:"document"`
	Item     *entity.LineItem `json:"item,omitempty"`
}

// ── Totales ───────────────────────────────────────────────────────────────────

// LineTotalDTO posición enriquecida con su total recalculado.
type LineTotalDTO struct {
	Index        int             `json:"index"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity" swaggertype:"string"`
	UnitPrice    decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Total        decimal.Decimal `json:"total" swaggertype:"string"`
	TotalDisplay string          `json:"total_display"` // ej. "4.500,00 €"
}

// TotalsResponse respuesta de POST /api/documents/totals (panel de resumen del editor).
type TotalsResponse struct {
	Items             []LineTotalDTO  `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal" swaggertype:"string"`
	Discount          decimal.Decimal `json:"discount" swaggertype:"string"`
	GrandTotal        decimal.Decimal `json:"grand_total" swaggertype:"string"` // puede ser negativo
	HasDiscount       bool            `json:"has_discount"`
	SubtotalDisplay   string          `json:"subtotal_display"`
	DiscountDisplay   string          `json:"discount_display"`
	GrandTotalDisplay string          `json:"grand_total_display"`
}

// ── Validación ────────────────────────────────────────────────────────────────

// FieldErrorDTO un campo con problema.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse respuesta de POST /api/documents/validate.
// La validación es orientativa: un documento inválido se puede seguir componiendo.
type ValidationResponse struct {
	Valid  bool            `json:"valid"`
	Errors []FieldErrorDTO `json:"errors"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status  string   `json:"status"`
	Service string   `json:"service"`
	Locales []string `json:"locales"`
}
