package core

import "math"

// Epsilon is the tolerance for floating point comparisons. It is also the
// distance hit points are nudged off a surface to avoid self-intersection.
const Epsilon = 1e-5

// ApproxEqual reports whether two floats differ by less than Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
