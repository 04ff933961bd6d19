package world

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// World is the collection of shapes and lights being rendered. It is read
// concurrently by render workers and must not be modified during a render.
type World struct {
	Shapes []*geometry.Shape
	Lights []lights.PointLight
}

// New creates a world from shapes and lights
func New(shapes []*geometry.Shape, pointLights []lights.PointLight) *World {
	return &World{Shapes: shapes, Lights: pointLights}
}

// Default returns the reference world: two concentric spheres lit from the
// upper left.
func Default() *World {
	outerMat := material.DefaultMaterial()
	outerMat.Color = core.NewColor(0.8, 1.0, 0.6)
	outerMat.Diffuse = 0.7
	outerMat.Specular = 0.2

	outer := geometry.Must(geometry.NewSphere(core.Identity(), outerMat))
	inner := geometry.Must(geometry.NewSphere(transform.Scaling(0.5, 0.5, 0.5), material.DefaultMaterial()))
	light := lights.NewPointLight(core.Point(-10, 10, -10), core.White)

	return New([]*geometry.Shape{outer, inner}, []lights.PointLight{light})
}

// AddShape appends a shape to the world
func (w *World) AddShape(s *geometry.Shape) {
	w.Shapes = append(w.Shapes, s)
}

// AddLight appends a light to the world
func (w *World) AddLight(l lights.PointLight) {
	w.Lights = append(w.Lights, l)
}

// Intersect tests the ray against every shape and returns all
// intersections sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var all []geometry.Intersection
	for _, s := range w.Shapes {
		all = append(all, s.Intersect(ray)...)
	}
	return geometry.NewIntersections(all...)
}

// IsShadowed reports, for each light in order, whether something lies
// between point and that light
func (w *World) IsShadowed(point core.Tuple) []bool {
	shadowed := make([]bool, len(w.Lights))
	for i, light := range w.Lights {
		shadowed[i] = w.isShadowedFrom(point, light)
	}
	return shadowed
}

func (w *World) isShadowedFrom(point core.Tuple, light lights.PointLight) bool {
	v := light.Position.Subtract(point)
	distance := v.Magnitude()
	shadowRay := core.NewRay(point, v.Normalize())

	hit, ok := w.Intersect(shadowRay).Hit()
	return ok && hit.T < distance
}

// ShadeHit computes the color at a prepared hit. Lights are combined by
// per-channel maximum rather than summed. depth is the remaining budget
// for reflection and refraction rays.
func (w *World) ShadeHit(comps geometry.PreComp, depth int) core.Color {
	m := comps.Object.Material
	objectInverse := comps.Object.Transform().Inverse()

	surface := core.Black
	for i, inShadow := range w.IsShadowed(comps.OverPoint) {
		c := w.Lights[i].Lighting(m, objectInverse, comps.OverPoint, comps.Eye, comps.Normal, inShadow)
		surface = surface.Max(c)
	}

	reflected := w.ReflectedColor(comps, depth)
	refracted := w.RefractedColor(comps, depth)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := geometry.Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ColorAt traces ray into the world and returns the color it sees, or
// black when nothing is hit
func (w *World) ColorAt(ray core.Ray, depth int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := geometry.PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, depth)
}

// ReflectedColor is the contribution of the mirror bounce at the hit
func (w *World) ReflectedColor(comps geometry.PreComp, depth int) core.Color {
	reflective := comps.Object.Material.Reflective
	if depth <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.Reflect)
	return w.ColorAt(reflectRay, depth-1).Multiply(reflective)
}

// RefractedColor is the contribution of light transmitted through the hit
// surface, bent by Snell's law. Total internal reflection contributes black.
func (w *World) RefractedColor(comps geometry.PreComp, depth int) core.Color {
	transparency := comps.Object.Material.Transparency
	if depth <= 0 || transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normal.Multiply(nRatio*cosI - cosT).
		Subtract(comps.Eye.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, depth-1).Multiply(transparency)
}
