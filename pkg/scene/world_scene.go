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

// phong builds a material from the Phong coefficients, leaving the
// reflective and refractive properties at their defaults
func phong(c core.Color, ambient, diffuse, specular, shininess float64) material.Material {
	m := material.DefaultMaterial()
	m.Color = c
	m.Ambient = ambient
	m.Diffuse = diffuse
	m.Specular = specular
	m.Shininess = shininess
	return m
}

// roomShapes returns three squashed spheres forming the floor and two
// walls of a corner at the origin, plus thin markers along each axis
func roomShapes(base material.Material) []*geometry.Shape {
	marker := func(c core.Color) material.Material {
		return phong(c, 0.3, 0.5, 0, 500)
	}
	sphere := func(m core.Matrix, mat material.Material) *geometry.Shape {
		return geometry.Must(geometry.NewSphere(m, mat))
	}

	return []*geometry.Shape{
		sphere(transform.Scaling(1000, 1000, 0.01), base),
		sphere(transform.Scaling(0.01, 1000, 1000), base),
		sphere(transform.Scaling(1000, 0.01, 1000), base),
		sphere(transform.Scaling(1000, 0.1, 0.1), marker(core.Blue)),
		sphere(transform.Scaling(0.1, 1000, 0.1), marker(core.Green)),
		sphere(transform.Scaling(0.1, 0.1, 1000), marker(core.Red)),
	}
}

// NewWorldScene creates three spheres in the corner of a room
func NewWorldScene(cameraOverrides ...CameraConfig) *Scene {
	green := phong(rgb(50, 255, 60).Multiply(0.8), 0.3, 0.4, 0.6, 200)
	grey := phong(rgb(50, 50, 50), 0.3, 0.6, 0.4, 0.7)
	purple := phong(rgb(220, 20, 220).Multiply(0.5), 0.3, 0.5, 0.4, 1000)
	base := phong(rgb(30, 30, 30), 0.3, 0.5, 0, 50)

	shapes := []*geometry.Shape{
		geometry.Must(geometry.NewSphere(transform.Translation(6, 5, 1), green)),
		geometry.Must(geometry.NewSphere(transform.Chain().Scale(3, 3, 3).Translate(3, 3, 3).Matrix(), grey)),
		geometry.Must(geometry.NewSphere(
			transform.Chain().Scale(4, 1, 1).RotateZ(math.Pi/2).Translate(5, 5, 7).Matrix(),
			purple,
		)),
	}
	shapes = append(shapes, roomShapes(base)...)

	w := world.New(shapes, []lights.PointLight{
		lights.NewPointLight(core.Point(10, 10, 1), core.White.Multiply(2)),
	})

	defaultCameraConfig := CameraConfig{
		From:        core.Point(12, 5, 15),
		To:          core.Point(3, 4, 0),
		Up:          core.Vector(0, 1, 0),
		FieldOfView: math.Pi / 2,
		Width:       400,
		Height:      400,
	}
	return newScene("world", w, defaultCameraConfig, cameraOverrides)
}

// NewLightsScene lights two grey spheres with a white key light and three
// colored lights spaced evenly around them
func NewLightsScene(cameraOverrides ...CameraConfig) *Scene {
	grey := phong(rgb(50, 50, 50), 0.3, 0.6, 0.4, 1000)
	base := phong(rgb(70, 70, 70), 0.3, 0.5, 0, 50)
	base.Reflective = 0.5

	shapes := []*geometry.Shape{
		geometry.Must(geometry.NewSphere(transform.Translation(6, 3, 6), grey)),
		geometry.Must(geometry.NewSphere(transform.Chain().Scale(1, 3, 1).Translate(6, 8, 6).Matrix(), grey)),
	}
	shapes = append(shapes, roomShapes(base)...)

	// Each colored light sits on a circle above the spheres
	ring := func(turn float64) core.Tuple {
		return transform.Chain().
			Translate(3, 12, 0).
			RotateY(math.Pi/4 + turn).
			Translate(6, 0, 6).
			Matrix().
			MultiplyTuple(core.Origin())
	}

	w := world.New(shapes, []lights.PointLight{
		lights.NewPointLight(core.Point(6, 13, 6), core.White.Multiply(0.8)),
		lights.NewPointLight(ring(0), rgb(100, 20, 20).Multiply(3)),
		lights.NewPointLight(ring(2*math.Pi/3), rgb(20, 20, 100).Multiply(3)),
		lights.NewPointLight(ring(4*math.Pi/3), rgb(20, 100, 20).Multiply(3)),
	})

	defaultCameraConfig := landscape(core.Point(12, 6, 12), core.Point(0, 4, 0))
	defaultCameraConfig.FieldOfView = math.Pi / 2
	return newScene("lights", w, defaultCameraConfig, cameraOverrides)
}
