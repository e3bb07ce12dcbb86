package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-composer/pkg/format"
)

func TestCurrency_ConvencionAlemana(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0,00\u00a0€"},
		{"900", "900,00\u00a0€"},
		{"1234.56", "1.234,56\u00a0€"},
		{"12100", "12.100,00\u00a0€"},
		{"11999.5", "11.999,50\u00a0€"},
		{"1000000", "1.000.000,00\u00a0€"},
		{"0.3", "0,30\u00a0€"},
		{"-30.25", "-30,25\u00a0€"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, format.Currency(decimal.RequireFromString(c.in)), "entrada %s", c.in)
	}
}

func TestCurrency_MontosGrandesSinPerdida(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"99999999999999999.99", "99.999.999.999.999.999,99\u00a0€"},
		{"123456789012345678901.25", "123.456.789.012.345.678.901,25\u00a0€"},
		{"-99999999999999999.99", "-99.999.999.999.999.999,99\u00a0€"},
		{"999999999999999999.995", "1.000.000.000.000.000.000,00\u00a0€"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, format.Currency(decimal.RequireFromString(c.in)), "entrada %s", c.in)
	}
}

func TestAmount_NegativoMenorQueUno(t *testing.T) {
	assert.Equal(t, "-0,50", format.Amount(decimal.RequireFromString("-0.5")))
	assert.Equal(t, "0,00", format.Amount(decimal.RequireFromString("-0.001")), "redondeado a cero no lleva signo")
}

func TestCurrency_Determinista(t *testing.T) {
	a := format.Currency(decimal.RequireFromString("100.50"))
	b := format.Currency(decimal.RequireFromString("100.5"))
	assert.Equal(t, a, b, "montos numéricamente iguales deben producir el mismo texto")
}

func TestCurrency_RedondeaADosDecimales(t *testing.T) {
	assert.Equal(t, "1,01\u00a0€", format.Currency(decimal.RequireFromString("1.005")))
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "5", format.Quantity(decimal.NewFromInt(5)))
	assert.Equal(t, "2.5", format.Quantity(decimal.RequireFromString("2.50")))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "15.03.2025", format.Date("2025-03-15"))
	assert.Equal(t, "29.03.2025", format.Date("2025-03-29"))
	assert.Equal(t, "02.01.2025", format.Date("2025-01-02"), "día y mes siempre con dos dígitos")
}

func TestDate_VaciaYMalformada(t *testing.T) {
	assert.Equal(t, "", format.Date(""))
	assert.Equal(t, "14 Tage netto", format.Date("14 Tage netto"), "una fecha no parseable se devuelve tal cual")
	assert.Equal(t, "2025-02-30", format.Date("2025-02-30"))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2025-03-29", format.AddDays("2025-03-15", 14))
	assert.Equal(t, "2025-03-01", format.AddDays("2025-02-28", 1))
	assert.Equal(t, "2024-12-31", format.AddDays("2025-01-01", -1))
	assert.Equal(t, "2024-02-29", format.AddDays("2024-02-28", 1), "año bisiesto")
}

func TestAddDays_EntradaInvalida(t *testing.T) {
	assert.Equal(t, "", format.AddDays("", 14))
	assert.Equal(t, "", format.AddDays("mañana", 14))
}

func TestToday(t *testing.T) {
	now := time.Date(2025, time.March, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-15", format.Today(now))
}
