// Package moneda formatea montos para mostrar en la localización es-CL.
package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var esCL = language.MustParse("es-CL")

// FormatearCLP devuelve el monto en pesos chilenos sin decimales, ej: "$1.234.567".
func FormatearCLP(d decimal.Decimal) string {
	p := message.NewPrinter(esCL)
	n := d.Round(0).IntPart()
	if n < 0 {
		return p.Sprintf("-$%d", -n)
	}
	return p.Sprintf("$%d", n)
}

// FormatearUSD devuelve el monto en dólares con dos decimales, ej: "US$12,53".
func FormatearUSD(d decimal.Decimal) string {
	p := message.NewPrinter(esCL)
	f, _ := d.Round(2).Float64()
	return p.Sprintf("US$%.2f", f)
}
