package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	ShapeIndex   int                    `json:"shapeIndex"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"` // Shaded color before gamma correction
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// extractMaterialInfo describes the shading coefficients of mat
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"ambient":   vecArray(mat.Ambient),
		"diffuse":   vecArray(mat.Diffuse),
		"shininess": mat.Shininess,
		"color": fmt.Sprintf("#%02x%02x%02x",
			renderer.ChannelToByte(mat.Diffuse.X),
			renderer.ChannelToByte(mat.Diffuse.Y),
			renderer.ChannelToByte(mat.Diffuse.Z)),
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["normal"] = vecArray(geom.Normal)
		properties["d"] = geom.D
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the center ray of pixel (x, y) and describes what it hits
func inspectPixel(sceneObj *scene.Scene, x, y int) InspectResponse {
	config := sceneObj.GetSamplingConfig()
	camera := renderer.NewCamera(sceneObj.GetCameraOrigin(), config.Width, config.Height)
	raytracer := renderer.NewRaytracer(sceneObj)

	ray := camera.GetRay(x, y)
	hit, isHit := raytracer.ClosestHit(ray, math.Inf(1))
	if !isHit {
		return InspectResponse{
			Hit:        false,
			ShapeIndex: geometry.NoShape,
			Color:      vecArray(sceneObj.GetBackground()),
		}
	}

	shape := sceneObj.GetShapes()[hit.ShapeIndex]
	geometryType, geometryProps := extractGeometryInfo(shape)

	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		ShapeIndex:   hit.ShapeIndex,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.T * ray.Direction.Length(),
		Color:        vecArray(raytracer.Shade(ray, hit, true)),
		Properties: map[string]interface{}{
			"geometry": geometryProps,
			"material": extractMaterialInfo(shape.GetMaterial()),
		},
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	logger := NewWebLogger(s.nextRenderID(), nil)
	req := parseRenderRequest(r.URL.Query(), logger)

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Size || pixelY < 0 || pixelY >= req.Size {
		writeError(w, http.StatusBadRequest, "pixel coordinates out of bounds")
		return
	}

	sceneObj, status, err := createScene(req.Scene, logger)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}
	sceneObj.SamplingConfig.Width = req.Size
	sceneObj.SamplingConfig.Height = req.Size
	if err := sceneObj.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY))
}

// vecArray converts a vector for JSON output
func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
