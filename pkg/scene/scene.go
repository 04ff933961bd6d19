package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene is a world plus the camera that frames it
type Scene struct {
	Name         string
	World        *world.World
	CameraConfig CameraConfig
}

// CameraConfig describes where the camera is and how large the image is
type CameraConfig struct {
	From        core.Tuple // Eye position
	To          core.Tuple // Point the eye looks at
	Up          core.Tuple // Approximate up direction
	FieldOfView float64    // Radians
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	return result
}

// Camera builds the renderer camera for the scene's camera config
func (s *Scene) Camera() (*renderer.Camera, error) {
	c := s.CameraConfig
	view := transform.ViewTransform(c.From, c.To, c.Up)
	return renderer.NewCamera(c.Width, c.Height, c.FieldOfView, view)
}

// newScene applies camera overrides and names the scene
func newScene(name string, w *world.World, defaults CameraConfig, overrides []CameraConfig) *Scene {
	cfg := defaults
	if len(overrides) > 0 {
		cfg = MergeCameraConfig(defaults, overrides[0])
	}
	return &Scene{Name: name, World: w, CameraConfig: cfg}
}

// rgb converts 8-bit channel values to a color
func rgb(r, g, b uint8) core.Color {
	return core.NewColor(float64(r)/255, float64(g)/255, float64(b)/255)
}

// landscape is the default camera framing used by most scenes
func landscape(from, to core.Tuple) CameraConfig {
	return CameraConfig{
		From:        from,
		To:          to,
		Up:          core.Vector(0, 1, 0),
		FieldOfView: math.Pi / 3,
		Width:       400,
		Height:      225,
	}
}
