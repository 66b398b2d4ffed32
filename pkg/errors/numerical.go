package errors

import (
	"fmt"
	"math"
)

// ClipValue clips a value to the range [min, max].
func ClipValue(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// XLogX computes x*log(x) with the convention 0*log(0) = 0.
func XLogX(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(x)
}

// CheckFinite returns a ValueError for op when values contain NaN or Inf.
func CheckFinite(op string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewValueError(op, fmt.Sprintf("non-finite value %v at index %d", v, i))
		}
	}
	return nil
}
