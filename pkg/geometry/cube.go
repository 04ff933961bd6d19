package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned box spanning [-1, 1] on every axis
type Cube struct{}

func (Cube) Name() string { return "cube" }

// LocalIntersect uses the slab method: the ray is inside the cube where
// it is inside all three pairs of parallel planes.
func (Cube) LocalIntersect(ray core.Ray) []float64 {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := maxIgnoringNaN(xtMin, ytMin, ztMin)
	tMax := minIgnoringNaN(xtMax, ytMax, ztMax)
	if math.IsNaN(tMin) || math.IsNaN(tMax) || tMin > tMax {
		return nil
	}
	return []float64{tMin, tMax}
}

// checkAxis returns where the ray crosses the two planes of one slab.
// A zero direction component divides to +/-Inf, which keeps the
// comparisons correct for rays parallel to the slab. A ray lying in a
// face plane gives 0/0 = NaN for that plane.
func checkAxis(origin, direction float64) (float64, float64) {
	tMin := (-1 - origin) / direction
	tMax := (1 - origin) / direction
	if tMin > tMax {
		return tMax, tMin
	}
	return tMin, tMax
}

// maxIgnoringNaN returns the largest non-NaN value, or NaN if all are NaN
func maxIgnoringNaN(vs ...float64) float64 {
	result := math.NaN()
	for _, v := range vs {
		if math.IsNaN(result) || v > result {
			result = v
		}
	}
	return result
}

// minIgnoringNaN returns the smallest non-NaN value, or NaN if all are NaN
func minIgnoringNaN(vs ...float64) float64 {
	result := math.NaN()
	for _, v := range vs {
		if math.IsNaN(result) || v < result {
			result = v
		}
	}
	return result
}

// LocalNormalAt picks the face whose axis has the largest absolute coordinate
func (Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	ax, ay, az := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxC := max(ax, ay, az)

	switch maxC {
	case ax:
		return core.Vector(math.Copysign(1, point.X), 0, 0)
	case ay:
		return core.Vector(0, math.Copysign(1, point.Y), 0)
	default:
		return core.Vector(0, 0, math.Copysign(1, point.Z))
	}
}
