package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Intersection describes where a ray struck a shape
type Intersection struct {
	Distance float64           // Distance along the ray, never negative
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Unit surface normal at the point
	Material material.Material // Material of the surface at the point
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray) (*Intersection, bool)
}
