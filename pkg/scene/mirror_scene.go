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

// NewMirrorScene places a sphere between two facing mirrors so the
// reflections recurse until the depth budget runs out
func NewMirrorScene(cameraOverrides ...CameraConfig) *Scene {
	floorMat := material.Patterned(material.MustPattern(
		material.Checkers(core.NewColor(0.35, 0.35, 0.35), core.NewColor(0.65, 0.65, 0.65)),
		core.Identity(),
	))
	floorMat.Specular = 0

	mirror := material.Mirror()

	ball := material.DefaultMaterial()
	ball.Color = core.NewColor(0.1, 0.6, 1)
	ball.Diffuse = 0.7
	ball.Specular = 0.3
	ball.Reflective = 0.2

	shapes := []*geometry.Shape{
		geometry.Must(geometry.NewPlane(core.Identity(), floorMat)),
		// Mirrors face each other across the x axis
		geometry.Must(geometry.NewPlane(transform.Chain().RotateZ(math.Pi/2).Translate(-4, 0, 0).Matrix(), mirror)),
		geometry.Must(geometry.NewPlane(transform.Chain().RotateZ(math.Pi/2).Translate(4, 0, 0).Matrix(), mirror)),
		geometry.Must(geometry.NewSphere(transform.Translation(0, 1, 0), ball)),
	}

	w := world.New(shapes, []lights.PointLight{
		lights.NewPointLight(core.Point(0, 10, -10), core.White),
	})
	return newScene("mirrors", w, landscape(core.Point(-1, 2.5, -7), core.Point(0.5, 1, 0)), cameraOverrides)
}
