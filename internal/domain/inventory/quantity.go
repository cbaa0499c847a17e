package inventory

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gudang-sepatu/internal/domain"
)

// LeatherScale número de decimales admitidos en cantidades de cuero (NUMERIC(14,2)).
const LeatherScale = 2

// MaxShoeQuantity tope de pares por fila (columna INT).
const MaxShoeQuantity = math.MaxInt32

// MaxLeatherQuantity tope de una fila de cuero (NUMERIC(14,2)).
var MaxLeatherQuantity = decimal.RequireFromString("999999999999.99")

const msgOverLimit = "jumlah melebihi batas maksimum"

// ValidateLeatherQuantity exige q > 0 (o >= 0 con allowZero) y como máximo LeatherScale decimales.
func ValidateLeatherQuantity(field string, q decimal.Decimal, allowZero bool) error {
	if q.IsNegative() || (!allowZero && q.IsZero()) {
		if allowZero {
			return domain.Invalid(field, "jumlah tidak boleh negatif")
		}
		return domain.Invalid(field, "jumlah harus lebih dari 0")
	}
	if !q.Equal(q.Truncate(LeatherScale)) {
		return domain.Invalid(field, "jumlah kulit maksimal 2 angka desimal")
	}
	return CheckLeatherTotal(field, q)
}

// CheckLeatherTotal error de validación si q no cabe en una fila de cuero.
func CheckLeatherTotal(field string, q decimal.Decimal) error {
	if q.GreaterThan(MaxLeatherQuantity) {
		return domain.Invalid(field, msgOverLimit)
	}
	return nil
}

// ValidateShoeQuantity exige q > 0 (o >= 0 con allowZero).
func ValidateShoeQuantity(field string, q int, allowZero bool) error {
	if q < 0 || (!allowZero && q == 0) {
		if allowZero {
			return domain.Invalid(field, "jumlah tidak boleh negatif")
		}
		return domain.Invalid(field, "jumlah harus lebih dari 0")
	}
	return CheckShoeTotal(field, q)
}

// CheckShoeTotal error de validación si q no cabe en una fila de calzado.
func CheckShoeTotal(field string, q int) error {
	if q > MaxShoeQuantity {
		return domain.Invalid(field, msgOverLimit)
	}
	return nil
}

// ShoeUnits convierte una cantidad decimal (ej. del JSON) a pares; rechaza fracciones.
func ShoeUnits(field string, q decimal.Decimal, allowZero bool) (int, error) {
	if !q.IsInteger() {
		return 0, domain.Invalid(field, "jumlah sepatu harus bilangan bulat")
	}
	if q.IsNegative() {
		return 0, ValidateShoeQuantity(field, -1, allowZero)
	}
	if q.GreaterThan(decimal.NewFromInt(MaxShoeQuantity)) {
		return 0, domain.Invalid(field, msgOverLimit)
	}
	n := int(q.IntPart())
	if err := ValidateShoeQuantity(field, n, allowZero); err != nil {
		return 0, err
	}
	return n, nil
}
