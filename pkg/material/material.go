package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Refractive indices of common media
const (
	RefractiveIndexVacuum  = 1.0
	RefractiveIndexAir     = 1.00029
	RefractiveIndexWater   = 1.333
	RefractiveIndexGlass   = 1.5
	RefractiveIndexDiamond = 2.417
)

// Material describes how a surface responds to light under the Phong model.
// It is a value type; the optional Pattern is shared and never mutated
// during a render.
type Material struct {
	Color           core.Color // Used when Pattern is nil
	Pattern         *Pattern   // Overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 = matte, 1 = perfect mirror
	Transparency    float64 // 0 = opaque, 1 = fully transparent
	RefractiveIndex float64
}

// DefaultMaterial returns a white surface with moderate highlights
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: RefractiveIndexVacuum,
	}
}

// ColorAt returns the surface color at a world point on a shape whose
// world-to-object matrix is objectInverse.
func (m Material) ColorAt(objectInverse core.Matrix, worldPoint core.Tuple) core.Color {
	if m.Pattern == nil {
		return m.Color
	}
	return m.Pattern.ColorAtObject(objectInverse, worldPoint)
}
