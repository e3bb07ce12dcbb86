// Package format contiene funciones puras para convertir montos y fechas en
// texto de presentación, y aritmética de fechas ISO.
//
// La convención monetaria es única y fija (de-DE, EUR): "1.234,56 €",
// independiente del idioma de las etiquetas.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ISODate es el layout de fechas de entrada (YYYY-MM-DD).
const ISODate = time.DateOnly

// DisplayDate es el layout de fechas de presentación (DD.MM.YYYY).
const DisplayDate = "02.01.2006"

// CurrencySymbol símbolo de la única moneda soportada.
const CurrencySymbol = "€"

// nbsp separa importe y símbolo sin permitir salto de línea.
const nbsp = "\u00a0"

// decimalSep separador decimal de-DE.
const decimalSep = ","

// maxPrinterDigits dígitos enteros que caben en un int64 para el printer de x/text.
const maxPrinterDigits = 18

var printer = message.NewPrinter(language.German)

// Currency formatea un monto como "1.234,56 €" (separador de miles ".", decimal ",", 2 decimales).
// Montos iguales producen siempre el mismo texto.
func Currency(value decimal.Decimal) string {
	return Amount(value) + nbsp + CurrencySymbol
}

// Amount formatea un monto sin símbolo: "1.234,56".
// Trabaja sobre los dígitos del decimal redondeado, sin pasar por float64: el texto
// es exacto para cualquier magnitud.
func Amount(value decimal.Decimal) string {
	rounded := value.Round(2)
	intDigits, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	out := groupThousands(intDigits) + decimalSep + frac
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

// groupThousands agrupa los dígitos enteros de a tres con el separador alemán.
func groupThousands(digits string) string {
	if len(digits) <= maxPrinterDigits {
		if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
			return printer.Sprint(number.Decimal(n))
		}
	}
	// fuera del rango de int64
	n := len(digits)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(digits) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// Quantity devuelve la cantidad tal cual, sin ceros superfluos ("5", "2.5").
func Quantity(q decimal.Decimal) string {
	return q.String()
}

// Date convierte una fecha ISO a "DD.MM.YYYY".
// Cadena vacía devuelve vacía; una entrada malformada se devuelve sin cambios (nunca falla).
func Date(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(ISODate, iso)
	if err != nil {
		return iso
	}
	return t.Format(DisplayDate)
}

// AddDays suma n días (puede ser negativo) a una fecha ISO y devuelve otra fecha ISO.
// Entrada vacía o no parseable devuelve "" sin señalar error.
func AddDays(iso string, days int) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(ISODate, iso)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, days).Format(ISODate)
}

// Today devuelve la fecha de now en formato ISO.
func Today(now time.Time) string {
	return now.Format(ISODate)
}
