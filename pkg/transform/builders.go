package transform

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Translation moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) core.Matrix {
	return core.Matrix{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scaling scales along each axis. Negative values reflect.
func Scaling(x, y, z float64) core.Matrix {
	return core.Matrix{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX rotates around the x axis by radians (left-handed)
func RotationX(radians float64) core.Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return core.Matrix{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY rotates around the y axis by radians
func RotationY(radians float64) core.Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return core.Matrix{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ rotates around the z axis by radians
func RotationZ(radians float64) core.Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return core.Matrix{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing moves each component in proportion to the other two.
// xy is "x moved in proportion to y" and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) core.Matrix {
	return core.Matrix{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// ViewTransform orients the world relative to an eye at from looking at to.
// The result maps world space into camera space where the eye sits at the
// origin looking down -z with up along +y.
func ViewTransform(from, to, up core.Tuple) core.Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := core.Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}

// Builder composes transformations in the order they are applied to an
// object: Chain().Scale(...).Translate(...) scales first, then translates.
type Builder struct {
	matrix core.Matrix
}

// Chain starts a new transformation chain at the identity
func Chain() *Builder {
	return &Builder{matrix: core.Identity()}
}

// Apply appends an arbitrary matrix to the chain
func (b *Builder) Apply(m core.Matrix) *Builder {
	b.matrix = m.Multiply(b.matrix)
	return b
}

func (b *Builder) Translate(x, y, z float64) *Builder {
	return b.Apply(Translation(x, y, z))
}

func (b *Builder) Scale(x, y, z float64) *Builder {
	return b.Apply(Scaling(x, y, z))
}

func (b *Builder) RotateX(radians float64) *Builder {
	return b.Apply(RotationX(radians))
}

func (b *Builder) RotateY(radians float64) *Builder {
	return b.Apply(RotationY(radians))
}

func (b *Builder) RotateZ(radians float64) *Builder {
	return b.Apply(RotationZ(radians))
}

func (b *Builder) Shear(xy, xz, yx, yz, zx, zy float64) *Builder {
	return b.Apply(Shearing(xy, xz, yx, yz, zx, zy))
}

// Matrix returns the composed matrix
func (b *Builder) Matrix() core.Matrix {
	return b.matrix
}
