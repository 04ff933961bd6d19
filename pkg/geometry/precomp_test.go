package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

func glassSphere(m core.Matrix, index float64) *Shape {
	mat := material.Glass()
	mat.RefractiveIndex = index
	return Must(NewSphere(m, mat))
}

func TestPrepareComputations_Outside(t *testing.T) {
	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	s := Must(NewSphere(core.Identity(), material.DefaultMaterial()))
	hit := NewIntersection(4, s)

	comps := PrepareComputations(hit, ray, Intersections{hit})

	if comps.T != 4 || comps.Object != s {
		t.Errorf("Expected t=4 on the sphere, got t=%v", comps.T)
	}
	if !comps.Point.ApproxEqual(core.Point(0, 0, -1)) {
		t.Errorf("Expected point (0,0,-1), got %v", comps.Point)
	}
	if !comps.Eye.ApproxEqual(core.Vector(0, 0, -1)) {
		t.Errorf("Expected eye (0,0,-1), got %v", comps.Eye)
	}
	if !comps.Normal.ApproxEqual(core.Vector(0, 0, -1)) {
		t.Errorf("Expected normal (0,0,-1), got %v", comps.Normal)
	}
	if comps.Inside {
		t.Error("Expected hit from outside")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	ray := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
	s := Must(NewSphere(core.Identity(), material.DefaultMaterial()))
	hit := NewIntersection(1, s)

	comps := PrepareComputations(hit, ray, nil)

	if !comps.Point.ApproxEqual(core.Point(0, 0, 1)) {
		t.Errorf("Expected point (0,0,1), got %v", comps.Point)
	}
	if !comps.Eye.ApproxEqual(core.Vector(0, 0, -1)) {
		t.Errorf("Expected eye (0,0,-1), got %v", comps.Eye)
	}
	if !comps.Inside {
		t.Error("Expected hit from inside")
	}
	// Normal is flipped to face the eye
	if !comps.Normal.ApproxEqual(core.Vector(0, 0, -1)) {
		t.Errorf("Expected normal (0,0,-1), got %v", comps.Normal)
	}
}

func TestPrepareComputations_OverAndUnderPoint(t *testing.T) {
	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	s := glassSphere(transform.Translation(0, 0, 1), material.RefractiveIndexGlass)
	hit := NewIntersection(5, s)

	comps := PrepareComputations(hit, ray, Intersections{hit})

	if !(comps.OverPoint.Z < -core.Epsilon/2) || !(comps.Point.Z > comps.OverPoint.Z) {
		t.Errorf("Over point %v should sit just above %v", comps.OverPoint, comps.Point)
	}
	if !(comps.UnderPoint.Z > core.Epsilon/2) || !(comps.Point.Z < comps.UnderPoint.Z) {
		t.Errorf("Under point %v should sit just below %v", comps.UnderPoint, comps.Point)
	}
}

func TestPrepareComputations_Reflect(t *testing.T) {
	half := math.Sqrt2 / 2
	p := Must(NewPlane(core.Identity(), material.DefaultMaterial()))
	ray := core.NewRay(core.Point(0, 1, -1), core.Vector(0, -half, half))
	hit := NewIntersection(math.Sqrt2, p)

	comps := PrepareComputations(hit, ray, nil)

	if !comps.Reflect.ApproxEqual(core.Vector(0, half, half)) {
		t.Errorf("Expected reflect (0,%v,%v), got %v", half, half, comps.Reflect)
	}
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	a := glassSphere(transform.Scaling(2, 2, 2), 1.5)
	b := glassSphere(transform.Translation(0, 0, -0.25), 2.0)
	c := glassSphere(transform.Translation(0, 0, 0.25), 2.5)

	ray := core.NewRay(core.Point(0, 0, -4), core.Vector(0, 0, 1))
	xs := NewIntersections(
		NewIntersection(2, a),
		NewIntersection(2.75, b),
		NewIntersection(3.25, c),
		NewIntersection(4.75, b),
		NewIntersection(5.25, c),
		NewIntersection(6, a),
	)

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for i, want := range expected {
		comps := PrepareComputations(xs[i], ray, xs)
		if comps.N1 != want.n1 || comps.N2 != want.n2 {
			t.Errorf("Intersection %d: expected n1=%v n2=%v, got n1=%v n2=%v", i, want.n1, want.n2, comps.N1, comps.N2)
		}
	}
}

func TestSchlick(t *testing.T) {
	half := math.Sqrt2 / 2
	s := glassSphere(core.Identity(), material.RefractiveIndexGlass)

	tests := []struct {
		name     string
		ray      core.Ray
		ts       []float64
		hitIndex int
		expected float64
	}{
		{"total internal reflection", core.NewRay(core.Point(0, 0, half), core.Vector(0, 1, 0)), []float64{-half, half}, 1, 1.0},
		{"perpendicular", core.NewRay(core.Point(0, 0, 0), core.Vector(0, 1, 0)), []float64{-1, 1}, 1, 0.04},
		{"small angle into denser medium", core.NewRay(core.Point(0, 0.99, -2), core.Vector(0, 0, 1)), []float64{1.8589}, 0, 0.48873},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs []Intersection
			for _, v := range tt.ts {
				xs = append(xs, NewIntersection(v, s))
			}
			sorted := NewIntersections(xs...)

			comps := PrepareComputations(sorted[tt.hitIndex], tt.ray, sorted)
			if got := Schlick(comps); math.Abs(got-tt.expected) > 1e-4 {
				t.Errorf("Expected reflectance %v, got %v", tt.expected, got)
			}
		})
	}
}
