package shape

import "math"

// Tolerance used by every overlap and containment test.
const (
	MaxULPs    = 16
	AbsEpsilon = 0.001
)

// NearlyEqual reports whether a and b are within MaxULPs representable
// float64 steps of each other, or within AbsEpsilon.
func NearlyEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b || math.Abs(a-b) <= AbsEpsilon {
		return true
	}
	if math.Signbit(a) != math.Signbit(b) {
		return false
	}
	ua, ub := math.Float64bits(a), math.Float64bits(b)
	if ua > ub {
		return ua-ub <= MaxULPs
	}
	return ub-ua <= MaxULPs
}

// within reports v <= ref, treating values in the tolerance band as equal.
func within(v, ref float64) bool {
	return v <= ref || NearlyEqual(v, ref)
}
