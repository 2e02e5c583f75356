package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config contains the integrator settings
type Config struct {
	MaxDepth   int       // Deepest recursion level that still shades; deeper rays see the background
	Bias       float64   // Offset along the normal applied to secondary ray origins
	Background core.Vec3 // Color of rays that escape the scene
}

// DefaultConfig returns the standard settings
func DefaultConfig() Config {
	return Config{
		MaxDepth:   4,
		Bias:       1e-3,
		Background: core.NewVec3(0.2, 0.7, 0.8),
	}
}

// WhittedIntegrator implements recursive ray tracing with Phong shading, hard
// shadows, mirror reflection and refraction. It keeps ray counters and is not
// safe for concurrent use.
type WhittedIntegrator struct {
	config Config
	counts RayCounts
}

var _ Integrator = (*WhittedIntegrator)(nil)

// NewWhittedIntegrator creates a new integrator
func NewWhittedIntegrator(config Config) *WhittedIntegrator {
	return &WhittedIntegrator{config: config}
}

// Counts returns the rays traced since the last reset
func (w *WhittedIntegrator) Counts() RayCounts {
	return w.counts
}

// ResetCounts zeroes the ray counters
func (w *WhittedIntegrator) ResetCounts() {
	w.counts = RayCounts{}
}

// RayColor traces a primary ray
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Vec3 {
	w.counts.Primary++
	return w.CastRay(ray, s, 0)
}

// CastRay returns the color seen along ray at the given recursion depth
func (w *WhittedIntegrator) CastRay(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	if depth > w.config.MaxDepth {
		return w.config.Background
	}

	hit, isHit := s.Hit(ray)
	if !isHit {
		return w.config.Background
	}
	w.counts.Hits++

	point, normal, mat := hit.Point, hit.Normal, hit.Material

	reflectDir := core.Reflect(ray.Direction, normal).Normalize()
	reflectRay := core.NewRay(w.offset(point, normal, reflectDir), reflectDir)
	w.counts.Reflection++
	reflectColor := w.CastRay(reflectRay, s, depth+1)

	refractDir := core.Refract(ray.Direction, normal, mat.RefractiveIndex, 1.0).Normalize()
	refractRay := core.NewRay(w.offset(point, normal, refractDir), refractDir)
	w.counts.Refraction++
	refractColor := w.CastRay(refractRay, s, depth+1)

	var diffuseIntensity, specularIntensity float64
	for _, light := range s.Lights {
		lightDir, lightDistance := light.Illuminate(point)

		// Skip the light if anything sits between the point and the light
		shadowOrigin := w.offset(point, normal, lightDir)
		w.counts.Shadow++
		if blocker, blocked := s.Hit(core.NewRay(shadowOrigin, lightDir)); blocked {
			if blocker.Point.Subtract(shadowOrigin).Length() < lightDistance {
				continue
			}
		}

		diffuseIntensity += light.Intensity * math.Max(0, lightDir.Dot(normal))
		specularIntensity += light.Intensity * math.Pow(
			math.Max(0, core.Reflect(lightDir, normal).Dot(ray.Direction)),
			mat.SpecularExponent,
		)
	}

	white := core.NewVec3(1, 1, 1)
	return mat.DiffuseColor.Multiply(diffuseIntensity * mat.Diffuse()).
		Add(white.Multiply(specularIntensity * mat.Specular())).
		Add(reflectColor.Multiply(mat.Reflective())).
		Add(refractColor.Multiply(mat.Refractive()))
}

// offset nudges point off the surface on the side dir travels towards, so the new
// ray does not hit the surface it starts on
func (w *WhittedIntegrator) offset(point, normal, dir core.Vec3) core.Vec3 {
	if dir.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(w.config.Bias))
	}
	return point.Add(normal.Multiply(w.config.Bias))
}
