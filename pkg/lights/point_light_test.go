package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestPointLight_Lighting(t *testing.T) {
	m := material.DefaultMaterial()
	position := core.Point(0, 0, 0)
	half := math.Sqrt2 / 2

	tests := []struct {
		name     string
		eye      core.Tuple
		normal   core.Tuple
		light    PointLight
		inShadow bool
		expected core.Color
	}{
		{
			name:     "eye between light and surface",
			eye:      core.Vector(0, 0, -1),
			normal:   core.Vector(0, 0, -1),
			light:    NewPointLight(core.Point(0, 0, -10), core.White),
			expected: core.NewColor(1.9, 1.9, 1.9),
		},
		{
			name:     "eye offset 45 degrees",
			eye:      core.Vector(0, half, -half),
			normal:   core.Vector(0, 0, -1),
			light:    NewPointLight(core.Point(0, 0, -10), core.White),
			expected: core.NewColor(1.0, 1.0, 1.0),
		},
		{
			name:     "light offset 45 degrees",
			eye:      core.Vector(0, 0, -1),
			normal:   core.Vector(0, 0, -1),
			light:    NewPointLight(core.Point(0, 10, -10), core.White),
			expected: core.NewColor(0.7364, 0.7364, 0.7364),
		},
		{
			name:     "eye in the path of the reflection",
			eye:      core.Vector(0, -half, -half),
			normal:   core.Vector(0, 0, -1),
			light:    NewPointLight(core.Point(0, 10, -10), core.White),
			expected: core.NewColor(1.6364, 1.6364, 1.6364),
		},
		{
			name:     "light behind the surface",
			eye:      core.Vector(0, 0, -1),
			normal:   core.Vector(0, 0, -1),
			light:    NewPointLight(core.Point(0, 0, 10), core.White),
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
		{
			name:     "surface in shadow",
			eye:      core.Vector(0, 0, -1),
			normal:   core.Vector(0, 0, -1),
			light:    NewPointLight(core.Point(0, 0, -10), core.White),
			inShadow: true,
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.light.Lighting(m, core.Identity(), position, tt.eye, tt.normal, tt.inShadow)
			if math.Abs(got.R-tt.expected.R) > 1e-4 ||
				math.Abs(got.G-tt.expected.G) > 1e-4 ||
				math.Abs(got.B-tt.expected.B) > 1e-4 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPointLight_LightingWithPattern(t *testing.T) {
	m := material.DefaultMaterial()
	m.Pattern = material.MustPattern(material.Stripe(core.White, core.Black), core.Identity())
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0

	eye := core.Vector(0, 0, -1)
	normal := core.Vector(0, 0, -1)
	light := NewPointLight(core.Point(0, 0, -10), core.White)

	c1 := light.Lighting(m, core.Identity(), core.Point(0.9, 0, 0), eye, normal, false)
	c2 := light.Lighting(m, core.Identity(), core.Point(1.1, 0, 0), eye, normal, false)

	if !c1.ApproxEqual(core.White) {
		t.Errorf("Expected white at x=0.9, got %v", c1)
	}
	if !c2.ApproxEqual(core.Black) {
		t.Errorf("Expected black at x=1.1, got %v", c2)
	}
}

func TestPointLight_IntensityTintsSurface(t *testing.T) {
	m := material.Matte(core.White)
	m.Ambient = 1
	m.Diffuse = 0

	light := NewPointLight(core.Point(0, 0, -10), core.NewColor(0.5, 0.25, 1))
	got := light.Lighting(m, core.Identity(), core.Origin(), core.Vector(0, 0, -1), core.Vector(0, 0, -1), false)
	if !got.ApproxEqual(core.NewColor(0.5, 0.25, 1)) {
		t.Errorf("Expected ambient tinted by light intensity, got %v", got)
	}
}
