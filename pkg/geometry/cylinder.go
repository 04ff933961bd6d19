package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// parallelTolerance bounds dx²+dz² below which a ray counts as parallel
// to the axis. It is compared against a squared length, so it is much
// tighter than core.Epsilon.
const parallelTolerance = 1e-10

// Cylinder is a radius 1 cylinder around the object-space y axis. It is
// infinite unless Truncated, in which case only the open tube with
// -1 < y < 1 is kept (no caps).
type Cylinder struct {
	Truncated bool
}

func (c Cylinder) Name() string {
	if c.Truncated {
		return "truncated-cylinder"
	}
	return "cylinder"
}

// LocalIntersect solves the quadratic in x and z only. Rays parallel to
// the axis never hit the wall.
func (c Cylinder) LocalIntersect(ray core.Ray) []float64 {
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) < parallelTolerance {
		return nil
	}

	b := 2 * (ray.Origin.X*ray.Direction.X + ray.Origin.Z*ray.Direction.Z)
	cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if !c.Truncated {
		return []float64{t0, t1}
	}

	var ts []float64
	for _, t := range []float64{t0, t1} {
		y := ray.Origin.Y + t*ray.Direction.Y
		if -1 < y && y < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

// LocalNormalAt points radially away from the axis
func (Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.Vector(point.X, 0, point.Z)
}
