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

// NewDefaultScene frames the reference two-sphere world
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		From:        core.Point(0, 0, -5),
		To:          core.Point(0, 0, 0),
		Up:          core.Vector(0, 1, 0),
		FieldOfView: math.Pi / 2,
		Width:       400,
		Height:      400,
	}
	return newScene("default", world.Default(), defaultCameraConfig, cameraOverrides)
}

// NewShadowScene creates a single sphere resting above a floor plane
func NewShadowScene(cameraOverrides ...CameraConfig) *Scene {
	floorMat := material.Matte(core.NewColor(0.9, 0.9, 0.9))

	sphereMat := material.DefaultMaterial()
	sphereMat.Color = core.NewColor(1, 0.2, 1)
	sphereMat.Diffuse = 0.7
	sphereMat.Specular = 0.3

	floor := geometry.Must(geometry.NewPlane(core.Identity(), floorMat))
	sphere := geometry.Must(geometry.NewSphere(transform.Translation(0, 1.2, 0), sphereMat))
	light := lights.NewPointLight(core.Point(-6, 10, -4), core.White)

	w := world.New([]*geometry.Shape{floor, sphere}, []lights.PointLight{light})
	return newScene("shadow", w, landscape(core.Point(0, 3, -6), core.Point(0, 0.8, 0)), cameraOverrides)
}
