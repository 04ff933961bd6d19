package geometry

import (
	"math"
	"sort"
)

// Intersection records where along a ray a shape was hit
type Intersection struct {
	T      float64
	Object *Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object *Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of intersections sorted by ascending t
type Intersections []Intersection

// NewIntersections sorts xs by t. Equal t values keep their input order.
func NewIntersections(xs ...Intersection) Intersections {
	sorted := make(Intersections, len(xs))
	copy(sorted, xs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].T < sorted[j].T
	})
	return sorted
}

// Hit returns the intersection with the smallest non-negative t. Ties go to
// the earlier entry. NaN values are never a hit.
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 || math.IsNaN(x.T) {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}
