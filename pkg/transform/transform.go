package transform

import (
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Transform pairs a matrix with its cached inverse and inverse transpose.
// The zero value is not usable; construct with New, MustNew or Identity so
// the caches always match the matrix.
type Transform struct {
	matrix           core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
}

// New validates that m is invertible and precomputes its inverse
func New(m core.Matrix) (Transform, error) {
	inverse, err := m.Inverse()
	if err != nil {
		return Transform{}, xerrors.Errorf("while building transform: %w", err)
	}
	return Transform{
		matrix:           m,
		inverse:          inverse,
		inverseTranspose: inverse.Transpose(),
	}, nil
}

// MustNew is like New but panics on a singular matrix
func MustNew(m core.Matrix) Transform {
	t, err := New(m)
	if err != nil {
		panic(err)
	}
	return t
}

// Identity returns the identity transform
func Identity() Transform {
	id := core.Identity()
	return Transform{matrix: id, inverse: id, inverseTranspose: id}
}

// Matrix returns the forward (object to world) matrix
func (t Transform) Matrix() core.Matrix {
	return t.matrix
}

// Inverse returns the cached world to object matrix
func (t Transform) Inverse() core.Matrix {
	return t.inverse
}

// InverseTranspose returns the cached matrix used to map normals to world space
func (t Transform) InverseTranspose() core.Matrix {
	return t.inverseTranspose
}

// ToLocal maps a world-space tuple into local space
func (t Transform) ToLocal(tuple core.Tuple) core.Tuple {
	return t.inverse.MultiplyTuple(tuple)
}

// ToWorld maps a local tuple into world space
func (t Transform) ToWorld(tuple core.Tuple) core.Tuple {
	return t.matrix.MultiplyTuple(tuple)
}

// RayToLocal maps a world-space ray into local space
func (t Transform) RayToLocal(ray core.Ray) core.Ray {
	return ray.Transform(t.inverse)
}

// NormalToWorld maps a local normal back to world space. The w component
// is zeroed because the inverse transpose can leak translation into it.
func (t Transform) NormalToWorld(normal core.Tuple) core.Tuple {
	world := t.inverseTranspose.MultiplyTuple(normal)
	world.W = 0
	return world.Normalize()
}
