package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// Raytracer renders a scene one pixel at a time
type Raytracer struct {
	scene      *scene.Scene
	opts       Options
	camera     *Camera
	integrator integrator.Integrator
}

// NewRaytracer validates the scene and options and creates a raytracer
func NewRaytracer(s *scene.Scene, opts Options) (*Raytracer, error) {
	if s == nil {
		return nil, ErrSceneNotDefined
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("renderer: invalid scene: %w", err)
	}

	return &Raytracer{
		scene:      s,
		opts:       opts,
		camera:     NewCamera(opts.Width, opts.Height, opts.FOV),
		integrator: integrator.NewWhittedIntegrator(opts.integratorConfig()),
	}, nil
}

// Options returns the options the raytracer was created with
func (rt *Raytracer) Options() Options {
	return rt.opts
}

// Render traces every pixel of the frame
func (rt *Raytracer) Render() (*Frame, RenderStats) {
	frame := NewFrame(rt.opts.Width, rt.opts.Height)
	rt.integrator.ResetCounts()

	logger.Infof("rendering %dx%d frame, %d objects, %d lights",
		rt.opts.Width, rt.opts.Height, len(rt.scene.Objects), len(rt.scene.Lights))
	start := time.Now()

	for j := 0; j < rt.opts.Height; j++ {
		for i := 0; i < rt.opts.Width; i++ {
			color := rt.integrator.RayColor(rt.camera.GetRay(i, j), rt.scene)
			frame.Set(i, j, ToRGB(color))
		}

		logger.Debugf("row %d/%d done", j+1, rt.opts.Height)
		if rt.opts.Progress != nil {
			rt.opts.Progress(j+1, rt.opts.Height)
		}
	}

	stats := RenderStats{
		Width:      rt.opts.Width,
		Height:     rt.opts.Height,
		Pixels:     rt.opts.Width * rt.opts.Height,
		Rays:       rt.integrator.Counts(),
		RenderTime: time.Since(start),
	}
	logger.Infof("rendered frame in %d ms, %d rays", stats.RenderTime.Milliseconds(), stats.Rays.Total())

	return frame, stats
}

// PixelInfo describes what the primary ray of a pixel sees
type PixelInfo struct {
	Ray   core.Ray
	Hit   *geometry.Intersection // Nearest intersection, nil on a miss
	Color core.Vec3              // Unclamped traced color
	RGB   RGB
}

// Inspect traces the primary ray of pixel (i, j) without touching the render
// statistics
func (rt *Raytracer) Inspect(i, j int) (PixelInfo, error) {
	if i < 0 || i >= rt.opts.Width || j < 0 || j >= rt.opts.Height {
		return PixelInfo{}, fmt.Errorf("%w: pixel (%d, %d) outside %dx%d frame", ErrPixelOutOfBounds, i, j, rt.opts.Width, rt.opts.Height)
	}

	ray := rt.camera.GetRay(i, j)
	hit, _ := rt.scene.Hit(ray)
	color := integrator.NewWhittedIntegrator(rt.opts.integratorConfig()).RayColor(ray, rt.scene)
	return PixelInfo{Ray: ray, Hit: hit, Color: color, RGB: ToRGB(color)}, nil
}
