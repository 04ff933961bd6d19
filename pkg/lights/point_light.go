package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// PointLight is an infinitely small light source with no falloff
type PointLight struct {
	Position  core.Tuple // Light position in world space
	Intensity core.Color // Light color and brightness
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Lighting evaluates the Phong reflection model for one light at a surface
// point. objectInverse is the world-to-object matrix of the shape being
// shaded and is only consulted when the material has a pattern. The result
// is not clamped.
func (l PointLight) Lighting(m material.Material, objectInverse core.Matrix, point, eye, normal core.Tuple, inShadow bool) core.Color {
	// Combine the surface color with the light's color
	effectiveColor := m.ColorAt(objectInverse, point).Hadamard(l.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightV := l.Position.Subtract(point).Normalize()

	// A negative cosine means the light is on the other side of the surface
	lightDotNormal := lightV.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	// A non-positive cosine means the reflection points away from the eye
	reflectV := lightV.Negate().Reflect(normal)
	reflectDotEye := reflectV.Dot(eye)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := l.Intensity.Multiply(m.Specular * factor)
	return ambient.Add(diffuse).Add(specular)
}
