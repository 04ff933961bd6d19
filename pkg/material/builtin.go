package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Glass returns a clear, fully transparent material
func Glass() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = RefractiveIndexGlass
	return m
}

// Mirror returns a dark, fully reflective material
func Mirror() Material {
	m := DefaultMaterial()
	m.Color = core.Black
	m.Diffuse = 0.1
	m.Specular = 1.0
	m.Shininess = 300
	m.Reflective = 1.0
	return m
}

// Matte returns a colored material without highlights
func Matte(c core.Color) Material {
	m := DefaultMaterial()
	m.Color = c
	m.Specular = 0
	return m
}

// Patterned returns the default material using p for its color
func Patterned(p *Pattern) Material {
	m := DefaultMaterial()
	m.Pattern = p
	return m
}
