package geometry

import (
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// Primitive is the object-space math for one kind of shape. Rays and
// points passed in are already in object space.
type Primitive interface {
	Name() string
	LocalIntersect(ray core.Ray) []float64
	LocalNormalAt(point core.Tuple) core.Tuple
}

// Shape places a primitive in the world with a transform and a material.
// Shapes are shared by pointer so intersections can refer back to them;
// they must not be modified while a render is running.
type Shape struct {
	Name      string
	Material  material.Material
	primitive Primitive
	transform transform.Transform
}

// NewShape creates a shape from a primitive placed by m
func NewShape(p Primitive, m core.Matrix, mat material.Material) (*Shape, error) {
	t, err := transform.New(m)
	if err != nil {
		return nil, xerrors.Errorf("while creating %s: %w", p.Name(), err)
	}
	return &Shape{
		Name:      p.Name(),
		Material:  mat,
		primitive: p,
		transform: t,
	}, nil
}

// Must panics if err is non-nil. It wraps shape constructors in scene
// definitions where a singular transform is a programming error.
func Must(s *Shape, err error) *Shape {
	if err != nil {
		panic(err)
	}
	return s
}

// NewSphere creates a unit sphere at the origin placed by m
func NewSphere(m core.Matrix, mat material.Material) (*Shape, error) {
	return NewShape(Sphere{}, m, mat)
}

// NewPlane creates the xz plane placed by m
func NewPlane(m core.Matrix, mat material.Material) (*Shape, error) {
	return NewShape(Plane{}, m, mat)
}

// NewCube creates the axis-aligned cube [-1,1]^3 placed by m
func NewCube(m core.Matrix, mat material.Material) (*Shape, error) {
	return NewShape(Cube{}, m, mat)
}

// NewCylinder creates an infinite unit cylinder around the y axis placed by m
func NewCylinder(m core.Matrix, mat material.Material) (*Shape, error) {
	return NewShape(Cylinder{}, m, mat)
}

// NewTruncatedCylinder creates an open unit cylinder spanning -1 < y < 1 placed by m
func NewTruncatedCylinder(m core.Matrix, mat material.Material) (*Shape, error) {
	return NewShape(Cylinder{Truncated: true}, m, mat)
}

// Primitive returns the shape's object-space implementation
func (s *Shape) Primitive() Primitive {
	return s.primitive
}

// Transform returns the shape's placement
func (s *Shape) Transform() transform.Transform {
	return s.transform
}

// SetTransform replaces the placement and its cached inverses. On error
// the previous transform is kept.
func (s *Shape) SetTransform(m core.Matrix) error {
	t, err := transform.New(m)
	if err != nil {
		return xerrors.Errorf("while setting %s transform: %w", s.Name, err)
	}
	s.transform = t
	return nil
}

// Intersect returns every intersection of a world-space ray with the shape,
// sorted by t. Negative t values are kept.
func (s *Shape) Intersect(ray core.Ray) Intersections {
	local := s.transform.RayToLocal(ray)
	ts := s.primitive.LocalIntersect(local)
	if len(ts) == 0 {
		return nil
	}

	xs := make([]Intersection, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: s}
	}
	return NewIntersections(xs...)
}

// NormalAt returns the world-space unit normal at a world point on the surface
func (s *Shape) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := s.transform.ToLocal(worldPoint)
	localNormal := s.primitive.LocalNormalAt(localPoint)
	return s.transform.NormalToWorld(localNormal)
}
