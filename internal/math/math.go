package math

import (
	"math"
	"strconv"
)

const maxPrecision = 8

// Format formats a float with a precision based on the value
// values below 1 keep 2 significant digits after their leading zeros.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', Precision(f), 64)
}

// Precision returns the number of decimals Format uses for the given value.
func Precision(f float64) int {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= 1 {
		return 2
	}
	p := 2 + O10(f)
	if p > maxPrecision {
		return maxPrecision
	}
	return p
}

// O10 returns the order of the value on a decimal basis
// NOTE : this does not differentiate between values bigger or smaller than 1
func O10(f float64) int {
	log10 := math.Log10(math.Abs(f))
	return int(math.Abs(log10))
}
