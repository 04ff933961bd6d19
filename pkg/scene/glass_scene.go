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

// NewGlassScene creates a hollow glass sphere in front of a striped wall.
// The glass is both reflective and transparent so Fresnel blending applies.
func NewGlassScene(cameraOverrides ...CameraConfig) *Scene {
	floorMat := material.Patterned(material.MustPattern(
		material.Checkers(core.NewColor(0.15, 0.15, 0.15), core.NewColor(0.85, 0.85, 0.85)),
		core.Identity(),
	))
	floorMat.Specular = 0

	wallMat := material.Patterned(material.MustPattern(
		material.Stripe(core.NewColor(0.9, 0.3, 0.2), core.NewColor(0.95, 0.9, 0.8)),
		transform.Scaling(0.5, 0.5, 0.5),
	))
	wallMat.Specular = 0

	glass := material.Glass()
	glass.Color = core.Black
	glass.Ambient = 0
	glass.Diffuse = 0.1
	glass.Specular = 1
	glass.Shininess = 300
	glass.Reflective = 0.9

	air := glass
	air.RefractiveIndex = material.RefractiveIndexAir

	inner := material.DefaultMaterial()
	inner.Color = core.NewColor(0.2, 0.8, 0.3)

	shapes := []*geometry.Shape{
		geometry.Must(geometry.NewPlane(core.Identity(), floorMat)),
		geometry.Must(geometry.NewPlane(transform.Chain().RotateX(math.Pi/2).Translate(0, 0, 6).Matrix(), wallMat)),
		geometry.Must(geometry.NewSphere(transform.Translation(0, 1.5, 0), glass)),
		geometry.Must(geometry.NewSphere(transform.Chain().Scale(0.6, 0.6, 0.6).Translate(0, 1.5, 0).Matrix(), air)),
		geometry.Must(geometry.NewCube(transform.Chain().Scale(0.3, 0.3, 0.3).RotateY(math.Pi/5).Translate(1.8, 0.3, -0.8).Matrix(), inner)),
	}

	w := world.New(shapes, []lights.PointLight{
		lights.NewPointLight(core.Point(-5, 8, -8), core.White),
	})
	return newScene("glass", w, landscape(core.Point(0, 2.5, -6), core.Point(0, 1.2, 0)), cameraOverrides)
}
