// Package money provides rounding and formatting for currency amounts.
package money

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// exactDigits is enough fractional digits to print any float64 exactly.
const exactDigits = 1074

// Round rounds v to the given number of decimal places, half to even,
// deciding ties on the exact binary value of v. 2.675 is stored as
// 2.67499999... and therefore rounds to 2.67.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', exactDigits, 64))
	if err != nil {
		return v
	}
	out, _ := d.RoundBank(places).Float64()
	return out
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return Round(v, 2)
}

// Format renders an amount with a currency symbol and two decimals.
func Format(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
