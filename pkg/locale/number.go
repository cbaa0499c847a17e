// Package locale formatea cantidades para humanos (exportaciones e informes).
// El motor de inventario nunca formatea: trabaja con decimal.Decimal.
package locale

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// Quantity formatea con separadores indonesios ("1.234,5"), hasta 2 decimales.
func Quantity(q decimal.Decimal) string {
	f, _ := q.Round(2).Float64()
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}

// Int formatea un entero con separador de miles indonesio ("12.500").
func Int(n int) string {
	return printer.Sprint(number.Decimal(n))
}

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Date formatea como "2 Januari 2026".
func Date(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}
