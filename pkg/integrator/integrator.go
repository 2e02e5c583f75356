package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the unclamped color seen along a primary ray
	RayColor(ray core.Ray, scene *scene.Scene) core.Vec3

	// Counts returns the rays traced since the last reset
	Counts() RayCounts

	// ResetCounts zeroes the ray counters
	ResetCounts()
}

// RayCounts tallies the rays an integrator has traced
type RayCounts struct {
	Primary    int // Camera rays
	Shadow     int // Rays towards lights
	Reflection int // Mirror reflection rays
	Refraction int // Transmitted rays
	Hits       int // Rays that struck an object, shadow rays excluded
}

// Total returns the number of rays of every kind
func (c RayCounts) Total() int {
	return c.Primary + c.Shadow + c.Reflection + c.Refraction
}
