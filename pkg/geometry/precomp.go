package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// PreComp holds the geometry of a hit needed for shading
type PreComp struct {
	T          float64
	Object     *Shape
	Point      core.Tuple // World-space hit point
	Eye        core.Tuple // Unit vector toward the ray origin
	Normal     core.Tuple // Surface normal, flipped to face the eye
	Reflect    core.Tuple // Ray direction mirrored about the normal
	OverPoint  core.Tuple // Point nudged above the surface for shadow and reflection rays
	UnderPoint core.Tuple // Point nudged below the surface for refraction rays
	Inside     bool       // Whether the ray origin is inside the object
	N1         float64    // Refractive index of the medium being left
	N2         float64    // Refractive index of the medium being entered
}

// PrepareComputations derives shading geometry for hit. xs is the full
// sorted intersection list for the ray and is used to find which objects
// contain the hit point; pass nil when refraction does not matter.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) PreComp {
	point := ray.Position(hit.T)
	eye := ray.Direction.Negate()
	normal := hit.Object.NormalAt(point)

	inside := normal.Dot(eye) < 0
	if inside {
		normal = normal.Negate()
	}

	offset := normal.Multiply(core.Epsilon)
	comps := PreComp{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		Eye:        eye,
		Normal:     normal,
		Reflect:    ray.Direction.Reflect(normal),
		OverPoint:  point.Add(offset),
		UnderPoint: point.Subtract(offset),
		Inside:     inside,
	}

	if len(xs) == 0 {
		xs = Intersections{hit}
	}
	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks the intersections in order keeping a stack of
// the objects the ray is currently inside. n1 is the innermost object
// before the hit, n2 the innermost after it.
func refractiveIndices(hit Intersection, xs Intersections) (float64, float64) {
	n1, n2 := material.RefractiveIndexVacuum, material.RefractiveIndexVacuum
	var containers []*Shape

	for _, x := range xs {
		if x == hit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material.RefractiveIndex
			}
		}

		if idx := indexOf(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if x == hit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material.RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

func indexOf(shapes []*Shape, s *Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light reflected rather than refracted. Returns 1 under total internal
// reflection.
func Schlick(comps PreComp) float64 {
	cos := comps.Eye.Dot(comps.Normal)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		// Use cos(theta_t) when leaving the denser medium
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
