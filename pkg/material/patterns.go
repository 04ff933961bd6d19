package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Solid returns the same color everywhere
func Solid(c core.Color) PatternFunc {
	return func(core.Tuple) core.Color {
		return c
	}
}

// Stripe alternates between a and b along x in unit-wide bands
func Stripe(a, b core.Color) PatternFunc {
	return func(p core.Tuple) core.Color {
		if isEven(math.Floor(p.X)) {
			return a
		}
		return b
	}
}

// Gradient blends linearly from a to b across each unit of x
func Gradient(a, b core.Color) PatternFunc {
	return func(p core.Tuple) core.Color {
		fraction := p.X - math.Floor(p.X)
		return a.Add(b.Subtract(a).Multiply(fraction))
	}
}

// Ring alternates between a and b in concentric rings around the y axis
func Ring(a, b core.Color) PatternFunc {
	return func(p core.Tuple) core.Color {
		if isEven(math.Floor(math.Hypot(p.X, p.Z))) {
			return a
		}
		return b
	}
}

// Checkers alternates between a and b in a 3D grid of unit cubes
func Checkers(a, b core.Color) PatternFunc {
	return func(p core.Tuple) core.Color {
		if isEven(math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)) {
			return a
		}
		return b
	}
}

// Coordinates returns the pattern-space point as a color. Useful for
// debugging transforms.
func Coordinates() PatternFunc {
	return func(p core.Tuple) core.Color {
		return core.NewColor(p.X, p.Y, p.Z)
	}
}

func isEven(v float64) bool {
	return math.Mod(v, 2) == 0
}
