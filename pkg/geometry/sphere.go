package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere, rejecting non-positive radii
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidRadius, radius)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}, nil
}

// Validate reports whether the sphere can be rendered
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidRadius, s.Radius)
	}
	return nil
}

// Hit tests if a ray intersects with the sphere. A ray starting inside the sphere
// hits the far side.
func (s *Sphere) Hit(ray core.Ray) (*Intersection, bool) {
	// Project the center onto the ray
	l := s.Center.Subtract(ray.Origin)
	tca := l.Dot(ray.Direction)

	// Squared distance between the center and the ray
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return nil, false
	}

	thc := math.Sqrt(r2 - d2)
	distance := tca - thc
	if distance < 0 {
		distance = tca + thc
	}
	if distance < 0 {
		return nil, false
	}

	point := ray.At(distance)
	return &Intersection{
		Distance: distance,
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(),
		Material: s.Material,
	}, true
}
