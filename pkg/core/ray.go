package core

import "math"

// Ray represents a ray with an origin and direction.
// Intersection routines assume Direction has unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Reflect mirrors the incident direction i about the unit normal n
func Reflect(i, n Vec3) Vec3 {
	return i.Subtract(n.Multiply(2 * i.Dot(n)))
}

// TotalInternalReflection is the direction Refract returns when no transmitted ray exists
var TotalInternalReflection = NewVec3(1, 0, 0)

// Refract bends the incident direction i through a surface with unit normal n
// using Snell's law. etaT is the refractive index of the medium the ray enters and
// etaI the index of the medium it leaves.
func Refract(i, n Vec3, etaT, etaI float64) Vec3 {
	cosi := -math.Max(-1, math.Min(1, i.Dot(n)))
	if cosi < 0 {
		// The ray is inside the object, swap the media
		return Refract(i, n.Negate(), etaI, etaT)
	}

	eta := etaI / etaT
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return TotalInternalReflection
	}
	return i.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k)))
}
