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

// NewCylinderScene creates open cylinders in different orientations and a
// cube on a plane
func NewCylinderScene(cameraOverrides ...CameraConfig) *Scene {
	floorMat := material.Matte(core.NewColor(0.5, 0.5, 0.5))
	floorMat.Reflective = 0.15

	red := material.DefaultMaterial()
	red.Color = core.NewColor(0.8, 0.2, 0.2)
	red.Specular = 0.4

	blue := material.DefaultMaterial()
	blue.Color = core.NewColor(0.2, 0.2, 0.8)

	gold := material.DefaultMaterial()
	gold.Color = core.NewColor(0.8, 0.6, 0.2)
	gold.Reflective = 0.3
	gold.Shininess = 50

	shapes := []*geometry.Shape{
		geometry.Must(geometry.NewPlane(core.Identity(), floorMat)),
		// Standing tube
		geometry.Must(geometry.NewTruncatedCylinder(
			transform.Chain().Scale(0.5, 1, 0.5).Translate(-1.5, 1, 0).Matrix(), red)),
		// Tube lying on its side, pointing toward the camera
		geometry.Must(geometry.NewTruncatedCylinder(
			transform.Chain().Scale(0.4, 1.2, 0.4).RotateX(math.Pi/2).Translate(0, 0.4, -0.5).Matrix(), gold)),
		// Tilted tube
		geometry.Must(geometry.NewTruncatedCylinder(
			transform.Chain().Scale(0.3, 0.8, 0.3).RotateZ(-math.Pi/6).Translate(1.6, 0.9, 0.3).Matrix(), blue)),
		geometry.Must(geometry.NewCube(
			transform.Chain().Scale(0.35, 0.35, 0.35).RotateY(math.Pi/4).Translate(0.2, 0.35, 1.6).Matrix(), blue)),
	}

	w := world.New(shapes, []lights.PointLight{
		lights.NewPointLight(core.Point(-4, 6, -6), core.White),
	})
	return newScene("cylinders", w, landscape(core.Point(0, 2.5, -5), core.Point(0, 0.8, 0)), cameraOverrides)
}
