package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width      int
	Height     int
	Pixels     int                  // Total number of pixels rendered
	Rays       integrator.RayCounts // Rays traced, by kind
	RenderTime time.Duration        // Wall time of the pixel loop
}

// RaysPerSecond returns the tracing throughput of the render
func (s RenderStats) RaysPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.Rays.Total()) / s.RenderTime.Seconds()
}

// RaysPerPixel returns the average number of rays traced per pixel
func (s RenderStats) RaysPerPixel() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Rays.Total()) / float64(s.Pixels)
}
