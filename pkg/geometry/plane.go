package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane through the origin with normal +y
type Plane struct{}

func (Plane) Name() string { return "plane" }

// LocalIntersect returns a single root, or none for parallel and coplanar rays
func (Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

func (Plane) LocalNormalAt(core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}
