package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Options controls a render.
type Options struct {
	// Frame dims.
	Width  int
	Height int

	// Horizontal field of view in radians.
	FOV float64

	// Deepest reflection/refraction level that is still shaded.
	MaxDepth int

	// Color of rays that leave the scene.
	Background core.Vec3

	// Called after each completed row, may be nil.
	Progress func(row, rows int)
}

// DefaultOptions returns the options used when nothing else is specified
func DefaultOptions() Options {
	camera := scene.DefaultCameraConfig()
	config := integrator.DefaultConfig()
	return Options{
		Width:      camera.Width,
		Height:     camera.Height,
		FOV:        camera.FOV,
		MaxDepth:   config.MaxDepth,
		Background: config.Background,
	}
}

// OptionsForScene returns the default options with the camera recommended by s
func OptionsForScene(s *scene.Scene) Options {
	opts := DefaultOptions()
	if s.CameraConfig.Width > 0 {
		opts.Width = s.CameraConfig.Width
	}
	if s.CameraConfig.Height > 0 {
		opts.Height = s.CameraConfig.Height
	}
	if s.CameraConfig.FOV > 0 {
		opts.FOV = s.CameraConfig.FOV
	}
	return opts
}

// Validate rejects options that cannot produce an image
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidFrameSize, o.Width, o.Height)
	}
	if !(o.FOV > 0 && o.FOV < math.Pi) {
		return fmt.Errorf("%w: got %g", ErrInvalidFOV, o.FOV)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, o.MaxDepth)
	}
	return nil
}

func (o Options) integratorConfig() integrator.Config {
	config := integrator.DefaultConfig()
	config.MaxDepth = o.MaxDepth
	config.Background = o.Background
	return config
}
