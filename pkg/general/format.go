// Package general holds formatting, identifier, cloning and call rate helpers.
package general

import (
	"fmt"
	"math"
	"math/big"
)

// FormatNumber rounds value to the given number of decimal places and returns
// it as a number, so trailing zeros disappear. Exact ties round away from
// zero, matching fixed point formatting of the decimal value.
func FormatNumber(value float64, decimals int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	if decimals < 0 {
		decimals = 0
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	scaled := new(big.Rat).SetFloat64(value)
	scaled.Mul(scaled, new(big.Rat).SetInt(scale))

	negative := scaled.Sign() < 0
	scaled.Abs(scaled)
	scaled.Add(scaled, big.NewRat(1, 2))
	n := new(big.Int).Quo(scaled.Num(), scaled.Denom())

	if n.Sign() == 0 {
		if negative {
			return math.Copysign(0, -1)
		}
		return 0
	}
	if negative {
		n.Neg(n)
	}

	out, _ := new(big.Rat).SetFrac(n, scale).Float64()
	return out
}

// FormatTime renders a second count as M:SS. Minutes are not padded and both
// parts are truncated toward zero.
func FormatTime(seconds float64) string {
	minutes := int(math.Trunc(seconds / 60))
	secs := int(math.Trunc(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
