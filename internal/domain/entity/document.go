package entity

import "github.com/shopspring/decimal"

// Address datos postales comunes a emisor y receptor.
type Address struct {
	Name        string `json:"name"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Country     string `json:"country,omitempty"`
}

// Sender emisor del documento: dirección + contacto + datos bancarios.
type Sender struct {
	Address
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	TaxID     string `json:"taxId,omitempty"`
	BankOwner string `json:"bankOwner,omitempty"`
	IBAN      string `json:"iban,omitempty"`
	BIC       string `json:"bic,omitempty"`
	BankName  string `json:"bankName,omitempty"`
}

// HasBankDetails es true si al menos uno de titular, IBAN o BIC está informado.
// BankName por sí solo no abre el bloque bancario.
func (s Sender) HasBankDetails() bool {
	return s.BankOwner != "" || s.IBAN != "" || s.BIC != ""
}

// Recipient receptor (cliente) del documento.
type Recipient struct {
	Address
	Email          string `json:"email,omitempty"`
	CustomerNumber string `json:"customerNumber,omitempty"`
}

// LineItem representa una posición facturable.
// Total es derivado: nunca se confía en el valor recibido, se recalcula antes de mostrarlo.
type LineItem struct {
	Description string           `json:"description"`
	UnitLabel   string           `json:"unitLabel,omitempty"`
	Quantity    decimal.Decimal  `json:"quantity" swaggertype:"string"`
	UnitPrice   decimal.Decimal  `json:"unitPrice" swaggertype:"string"`
	Total       *decimal.Decimal `json:"total,omitempty" swaggertype:"string"`
}

// Document es la estructura canónica de una factura o cotización.
// Los campos de texto opcionales usan "" como ausente.
type Document struct {
	Kind              DocumentKind     `json:"kind"`
	DocNumber         string           `json:"docNumber"`
	IssueDate         string           `json:"issueDate"`              // ISO YYYY-MM-DD
	PaymentTerms      string           `json:"paymentTerms,omitempty"` // factura: texto libre; cotización: fecha ISO
	Period            string           `json:"period,omitempty"`
	Sender            Sender           `json:"sender"`
	Recipient         Recipient        `json:"recipient"`
	LineItems         []LineItem       `json:"lineItems"`
	DiscountAmount    *decimal.Decimal `json:"discountAmount,omitempty" swaggertype:"string"` // monto absoluto, nunca porcentaje
	DiscountLabel     string           `json:"discountLabel,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	SmallBusinessNote bool             `json:"smallBusinessNote,omitempty"`
}

// Clone devuelve una copia profunda; las etapas y los editores trabajan sobre copias.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	out.LineItems = make([]LineItem, len(d.LineItems))
	for i, it := range d.LineItems {
		out.LineItems[i] = it.clone()
	}
	if d.DiscountAmount != nil {
		v := *d.DiscountAmount
		out.DiscountAmount = &v
	}
	return &out
}

func (it LineItem) clone() LineItem {
	if it.Total != nil {
		v := *it.Total
		it.Total = &v
	}
	return it
}
