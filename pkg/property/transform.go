package property

import "math"

// Truncate converts v to an int32 rounding toward zero. Values outside the int32
// range saturate and NaN becomes 0.
func Truncate(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

// Saturate truncates v toward zero and clamps it into [min, max]. NaN clamps to min.
func Saturate(v float64, min, max int32) int32 {
	if math.IsNaN(v) {
		return min
	}
	iv := Truncate(v)
	if iv < min {
		return min
	}
	if iv > max {
		return max
	}
	return iv
}

// Flag maps zero to 0 and anything else, NaN included, to 1.
func Flag(v float64) int32 {
	if v == 0 {
		return 0
	}
	return 1
}
