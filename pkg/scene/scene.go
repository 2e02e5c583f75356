package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var (
	ErrNilShape      = errors.New("scene: nil shape")
	ErrInvalidCamera = errors.New("scene: invalid camera")
)

// CameraConfig holds the camera parameters a scene recommends
type CameraConfig struct {
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
	FOV    float64 // Horizontal field of view in radians
}

// DefaultCameraConfig returns the camera used when a scene does not specify one
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:  1024,
		Height: 768,
		FOV:    math.Pi / 2,
	}
}

// Validate rejects cameras that cannot produce an image
func (c CameraConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: frame size %dx%d must be positive", ErrInvalidCamera, c.Width, c.Height)
	}
	if !(c.FOV > 0 && c.FOV < math.Pi) {
		return fmt.Errorf("%w: field of view %g must be in (0, pi)", ErrInvalidCamera, c.FOV)
	}
	return nil
}

// Scene contains all the elements needed for rendering. It is assembled up front
// and must not be modified while a render is in progress.
type Scene struct {
	Objects      []geometry.Shape    // Objects in the scene
	Lights       []lights.PointLight // Lights in the scene
	CameraConfig CameraConfig
}

// validator is implemented by shapes that can reject their own configuration
type validator interface {
	Validate() error
}

// New creates a scene from objects and lights and validates it
func New(objects []geometry.Shape, pointLights []lights.PointLight) (*Scene, error) {
	s := &Scene{
		Objects:      objects,
		Lights:       pointLights,
		CameraConfig: DefaultCameraConfig(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every object and light of the scene
func (s *Scene) Validate() error {
	for i, shape := range s.Objects {
		if shape == nil {
			return fmt.Errorf("object %d: %w", i, ErrNilShape)
		}
		if v, ok := shape.(validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("object %d: %w", i, err)
			}
		}
	}
	for i, light := range s.Lights {
		if err := light.Validate(); err != nil {
			return fmt.Errorf("light %d: %w", i, err)
		}
	}
	return nil
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) error {
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		return err
	}
	s.Objects = append(s.Objects, sphere)
	return nil
}

// AddChessboard adds a checkered ground plane at the default height
func (s *Scene) AddChessboard(material1, material2 material.Material) {
	s.Objects = append(s.Objects, geometry.NewChessboard(material1, material2))
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(position core.Vec3, intensity float64) error {
	light, err := lights.NewPointLight(position, intensity)
	if err != nil {
		return err
	}
	s.Lights = append(s.Lights, light)
	return nil
}

// Hit returns the intersection closest to the ray origin among all objects.
// When two objects are hit at exactly the same distance the earlier one wins.
func (s *Scene) Hit(ray core.Ray) (*geometry.Intersection, bool) {
	var closest *geometry.Intersection

	for _, shape := range s.Objects {
		if hit, isHit := shape.Hit(ray); isHit {
			if closest == nil || hit.Distance < closest.Distance {
				closest = hit
			}
		}
	}

	return closest, closest != nil
}
