package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Albedo weights the four shading terms of a material
type Albedo [4]float64

// Indices into Albedo
const (
	DiffuseWeight = iota
	SpecularWeight
	ReflectWeight
	RefractWeight
)

// Material describes how a surface responds to light. It is a plain value and is
// copied into every intersection that hits it.
type Material struct {
	DiffuseColor     core.Vec3 // Base color lit by the diffuse term
	Albedo           Albedo    // Weights of the diffuse, specular, reflection and refraction terms
	SpecularExponent float64   // Phong exponent, higher is a tighter highlight
	RefractiveIndex  float64   // Index of refraction of the medium behind the surface
}

// NewMaterial creates a new material
func NewMaterial(diffuse core.Vec3, albedo Albedo, specularExponent, refractiveIndex float64) Material {
	return Material{
		DiffuseColor:     diffuse,
		Albedo:           albedo,
		SpecularExponent: specularExponent,
		RefractiveIndex:  refractiveIndex,
	}
}

// Diffuse returns the weight of the diffuse term
func (m Material) Diffuse() float64 { return m.Albedo[DiffuseWeight] }

// Specular returns the weight of the specular highlight term
func (m Material) Specular() float64 { return m.Albedo[SpecularWeight] }

// Reflective returns the weight of the mirror reflection term
func (m Material) Reflective() float64 { return m.Albedo[ReflectWeight] }

// Refractive returns the weight of the refraction term
func (m Material) Refractive() float64 { return m.Albedo[RefractWeight] }
