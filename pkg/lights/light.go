package lights

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var (
	ErrInvalidIntensity = errors.New("lights: intensity must be positive")
)

// PointLight is an infinitely small light source. Its contribution does not fall
// off with distance.
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light, rejecting non-positive intensities
func NewPointLight(position core.Vec3, intensity float64) (PointLight, error) {
	light := PointLight{Position: position, Intensity: intensity}
	if err := light.Validate(); err != nil {
		return PointLight{}, err
	}
	return light, nil
}

// Validate reports whether the light can be rendered
func (l PointLight) Validate() error {
	if !(l.Intensity > 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidIntensity, l.Intensity)
	}
	return nil
}

// Illuminate returns the unit direction from point towards the light and the
// distance between them
func (l PointLight) Illuminate(point core.Vec3) (direction core.Vec3, distance float64) {
	toLight := l.Position.Subtract(point)
	return toLight.Normalize(), toLight.Length()
}
