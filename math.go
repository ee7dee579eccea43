package draft

import "math"

// Epsilon is the tolerance shared by the approximate comparisons in this
// package. Geometry that collapses below this threshold under a transform is
// treated as degenerate and resolved by policy instead of stored as zero.
const Epsilon = 1e-12

// Angle conversion factors. Multiply to convert.
const (
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

// IsZero reports whether x is zero within Epsilon.
func IsZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// Equal reports whether a and b are equal within Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// EqualWithin reports whether a and b differ by less than threshold.
func EqualWithin(a, b, threshold float64) bool {
	return math.Abs(a-b) < threshold
}

// NormalizeAngle wraps an angle in radians into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
