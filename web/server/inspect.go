package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	Shadowed     []bool                 `json:"shadowed,omitempty"` // One entry per light
	N1           float64                `json:"n1,omitempty"`
	N2           float64                `json:"n2,omitempty"`
	Color        [3]float64             `json:"color"` // Final traced color of the pixel
	Material     map[string]interface{} `json:"material,omitempty"`
}

// inspectPixel casts the camera ray through a pixel and describes the
// first surface it hits
func inspectPixel(sc *scene.Scene, pixelX, pixelY, maxDepth int) (InspectResponse, error) {
	cam, err := sc.Camera()
	if err != nil {
		return InspectResponse{}, err
	}

	ray := cam.RayForPixel(pixelX, pixelY)
	color := sc.World.ColorAt(ray, maxDepth)

	xs := sc.World.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResponse{Hit: false, Color: colorArray(color)}, nil
	}

	comps := geometry.PrepareComputations(hit, ray, xs)
	return InspectResponse{
		Hit:          true,
		GeometryType: hit.Object.Name,
		Point:        tupleArray(comps.Point),
		Normal:       tupleArray(comps.Normal),
		Distance:     comps.T,
		Inside:       comps.Inside,
		Shadowed:     sc.World.IsShadowed(comps.OverPoint),
		N1:           comps.N1,
		N2:           comps.N2,
		Color:        colorArray(color),
		Material:     materialInfo(hit.Object.Material),
	}, nil
}

// materialInfo extracts the Phong parameters of a material
func materialInfo(m material.Material) map[string]interface{} {
	info := map[string]interface{}{
		"ambient":         m.Ambient,
		"diffuse":         m.Diffuse,
		"specular":        m.Specular,
		"shininess":       m.Shininess,
		"reflective":      m.Reflective,
		"transparency":    m.Transparency,
		"refractiveIndex": m.RefractiveIndex,
	}
	if m.Pattern != nil {
		info["patterned"] = true
	} else {
		info["color"] = colorArray(m.Color)
	}
	return info
}

func tupleArray(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

func colorArray(c core.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sc, err := s.loadScene(req)
	if err != nil {
		writeSceneError(w, err)
		return
	}

	cfg := sc.CameraConfig
	if pixelX < 0 || pixelX >= cfg.Width || pixelY < 0 || pixelY >= cfg.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	response, err := inspectPixel(sc, pixelX, pixelY, req.MaxDepth)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid camera: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}
