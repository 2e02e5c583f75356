package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]uint8               `json:"color"` // Final pixel color
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo extracts the shading parameters of a material
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	c := mat.DiffuseColor.Clamp(0, 1)
	return map[string]interface{}{
		"diffuseColor":     vecArray(mat.DiffuseColor),
		"color":            fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255)),
		"albedo":           [4]float64(mat.Albedo),
		"specularExponent": mat.SpecularExponent,
		"refractiveIndex":  mat.RefractiveIndex,
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

	case *geometry.Chessboard:
		properties["height"] = geom.Height
		return "chessboard", properties

	default:
		return "unknown", properties
	}
}

// hitShape finds the scene object responsible for the nearest hit along ray
func hitShape(sc *scene.Scene, ray core.Ray, hit *geometry.Intersection) geometry.Shape {
	for _, shape := range sc.Objects {
		if shapeHit, isHit := shape.Hit(ray); isHit && shapeHit.Distance == hit.Distance {
			return shape
		}
	}
	return nil
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, sc, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid scene parameters: %w", err))
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid x coordinate"))
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid y coordinate"))
		return
	}

	rt, err := renderer.NewRaytracer(sc, req.options())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	info, err := rt.Inspect(pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	response := InspectResponse{Color: [3]uint8(info.RGB)}
	if info.Hit != nil {
		geometryType, geometryProps := extractGeometryInfo(hitShape(sc, info.Ray, info.Hit))
		response.Hit = true
		response.GeometryType = geometryType
		response.Point = vecArray(info.Hit.Point)
		response.Normal = vecArray(info.Hit.Normal)
		response.Distance = info.Hit.Distance
		response.Properties = map[string]interface{}{
			"material": extractMaterialInfo(info.Hit.Material),
			"geometry": geometryProps,
		}
	}

	writeJSON(w, http.StatusOK, response)
}
