package material

import (
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// PatternFunc maps a point in pattern space to a color. It must be
// deterministic and safe for concurrent use.
type PatternFunc func(point core.Tuple) core.Color

// Pattern is a procedural color source with its own transform. Patterns are
// always evaluated relative to the object space of the shape that owns the
// material: world point -> object space -> pattern space.
type Pattern struct {
	fn        PatternFunc
	transform transform.Transform
}

// NewPattern creates a pattern placed by m within the owning shape's object space
func NewPattern(fn PatternFunc, m core.Matrix) (*Pattern, error) {
	t, err := transform.New(m)
	if err != nil {
		return nil, xerrors.Errorf("while creating pattern: %w", err)
	}
	return &Pattern{fn: fn, transform: t}, nil
}

// MustPattern is like NewPattern but panics on a singular matrix
func MustPattern(fn PatternFunc, m core.Matrix) *Pattern {
	p, err := NewPattern(fn, m)
	if err != nil {
		panic(err)
	}
	return p
}

// Transform returns the pattern's placement
func (p *Pattern) Transform() transform.Transform {
	return p.transform
}

// SetTransform replaces the pattern transform and its cached inverse
func (p *Pattern) SetTransform(m core.Matrix) error {
	t, err := transform.New(m)
	if err != nil {
		return xerrors.Errorf("while setting pattern transform: %w", err)
	}
	p.transform = t
	return nil
}

// ColorAt evaluates the pattern at a point already in pattern space
func (p *Pattern) ColorAt(point core.Tuple) core.Color {
	return p.fn(point)
}

// ColorAtObject evaluates the pattern at a world point on a shape whose
// world-to-object matrix is objectInverse.
func (p *Pattern) ColorAtObject(objectInverse core.Matrix, worldPoint core.Tuple) core.Color {
	objectPoint := objectInverse.MultiplyTuple(worldPoint)
	patternPoint := p.transform.ToLocal(objectPoint)
	return p.fn(patternPoint)
}
