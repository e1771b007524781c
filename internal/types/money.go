// README: Money value used by the computation modules; rounding happens only at the response boundary.
package types

import "math"

// Money is a currency amount kept at full float precision until it is rendered.
type Money float64

// Round returns m rounded half away from zero to two decimals.
func (m Money) Round() Money {
	return Money(Round(float64(m), 2))
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	if places <= 0 {
		return math.Round(v)
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
