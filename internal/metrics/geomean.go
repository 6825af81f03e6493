package metrics

import "math"

// Geomean returns the geometric mean of values. ok is false for an
// empty input; the geometric mean of an empty set is undefined and
// callers must guard rather than report a bogus number.
//
// Computed as the n-th root of the running product. Inputs here are
// critical-path periods (order 1e-9) over a handful of clock domains,
// so the product stays comfortably inside double range.
func Geomean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	product := 1.0
	for _, v := range values {
		product *= v
	}
	return math.Pow(product, 1.0/float64(len(values))), true
}
