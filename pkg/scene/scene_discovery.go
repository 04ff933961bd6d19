package scene

import (
	"golang.org/x/xerrors"
)

// ErrUnknownScene is returned by Load for ids that are not registered
var ErrUnknownScene = xerrors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // One-line summary
}

type entry struct {
	info  SceneInfo
	build func(overrides ...CameraConfig) *Scene
}

// registry lists the built-in scenes in display order
var registry = []entry{
	{SceneInfo{"default", "Default World", "Two concentric spheres lit from the upper left"}, NewDefaultScene},
	{SceneInfo{"shadow", "Sphere Shadow", "A sphere casting a shadow onto a plane"}, NewShadowScene},
	{SceneInfo{"world", "Sphere Room", "Spheres in a corner with squashed-sphere walls and axis markers"}, NewWorldScene},
	{SceneInfo{"lights", "Colored Lights", "Four point lights blended by per-channel maximum"}, NewLightsScene},
	{SceneInfo{"patterns", "Patterns", "Stripe, gradient, ring and checker patterns"}, NewPatternScene},
	{SceneInfo{"mirrors", "Mirrors", "A sphere between two parallel mirrors"}, NewMirrorScene},
	{SceneInfo{"glass", "Glass", "A hollow glass sphere over a checkered floor"}, NewGlassScene},
	{SceneInfo{"cylinders", "Cylinders", "Open cylinders and a cube on a plane"}, NewCylinderScene},
}

// ListScenes returns every built-in scene
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, len(registry))
	for i, e := range registry {
		infos[i] = e.info
	}
	return infos
}

// Load builds the scene with the given id, applying optional camera overrides
func Load(id string, overrides ...CameraConfig) (*Scene, error) {
	for _, e := range registry {
		if e.info.ID == id {
			return e.build(overrides...), nil
		}
	}
	return nil, xerrors.Errorf("%q: %w", id, ErrUnknownScene)
}
