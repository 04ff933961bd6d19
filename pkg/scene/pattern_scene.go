package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewPatternScene shows each built-in pattern on its own sphere above a
// checkered floor
func NewPatternScene(cameraOverrides ...CameraConfig) *Scene {
	cream := core.NewColor(0.95, 0.9, 0.8)
	teal := core.NewColor(0.1, 0.5, 0.5)
	rust := core.NewColor(0.7, 0.3, 0.1)

	floorMat := material.Patterned(material.MustPattern(
		material.Checkers(core.White.Multiply(0.9), core.White.Multiply(0.2)),
		core.Identity(),
	))
	floorMat.Specular = 0
	floorMat.Reflective = 0.1

	stripes := material.Patterned(material.MustPattern(
		material.Stripe(cream, teal),
		transform.Chain().Scale(0.25, 0.25, 0.25).RotateZ(math.Pi/4).Matrix(),
	))
	gradient := material.Patterned(material.MustPattern(
		material.Gradient(rust, cream),
		transform.Chain().Scale(2, 1, 1).Translate(-1, 0, 0).Matrix(),
	))
	rings := material.Patterned(material.MustPattern(
		material.Ring(teal, cream),
		transform.Chain().Scale(0.2, 0.2, 0.2).RotateX(math.Pi/2).Matrix(),
	))
	checks := material.Patterned(material.MustPattern(
		material.Checkers(rust, cream),
		transform.Scaling(0.5, 0.5, 0.5),
	))

	shapes := []*geometry.Shape{
		geometry.Must(geometry.NewPlane(core.Identity(), floorMat)),
		geometry.Must(geometry.NewSphere(transform.Translation(-3, 1, 0), stripes)),
		geometry.Must(geometry.NewSphere(transform.Translation(-1, 1, 0), gradient)),
		geometry.Must(geometry.NewSphere(transform.Translation(1, 1, 0), rings)),
		geometry.Must(geometry.NewSphere(transform.Translation(3, 1, 0), checks)),
	}

	w := world.New(shapes, []lights.PointLight{
		lights.NewPointLight(core.Point(-10, 10, -10), core.White),
	})
	return newScene("patterns", w, landscape(core.Point(0, 3, -8), core.Point(0, 1, 0)), cameraOverrides)
}
