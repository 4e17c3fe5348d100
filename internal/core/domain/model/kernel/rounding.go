package kernel

import "math"

// RoundWeight rounds a gram weight to 3 decimal places, the precision used for
// fine-weight and gross-weight figures throughout the domain.
func RoundWeight(grams float64) float64 {
	return math.Round(grams*1000) / 1000
}

// RoundMoney rounds a monetary amount to 2 decimal places, the precision used
// for making-charge totals.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
