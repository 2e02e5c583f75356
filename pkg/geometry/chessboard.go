package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const (
	// DefaultChessboardHeight is the y coordinate of the board plane
	DefaultChessboardHeight = -4.0

	// Rays whose y direction is smaller than this are treated as parallel to the board
	parallelEpsilon = 1e-3

	// Shifts x so tile indices stay non-negative for scenes near the origin
	tileOffset = 1000.0
)

// Chessboard is an infinite horizontal plane tiled with two alternating materials
type Chessboard struct {
	Material1 material.Material
	Material2 material.Material
	Height    float64
}

// NewChessboard creates a board at the default height
func NewChessboard(material1, material2 material.Material) *Chessboard {
	return &Chessboard{
		Material1: material1,
		Material2: material2,
		Height:    DefaultChessboardHeight,
	}
}

// Hit tests if a ray intersects with the board plane
func (c *Chessboard) Hit(ray core.Ray) (*Intersection, bool) {
	if math.Abs(ray.Direction.Y) < parallelEpsilon {
		return nil, false
	}

	distance := -(ray.Origin.Y - c.Height) / ray.Direction.Y
	if !(distance > 0) {
		return nil, false
	}

	point := ray.At(distance)
	return &Intersection{
		Distance: distance,
		Point:    point,
		Normal:   core.NewVec3(0, 1, 0),
		Material: c.MaterialAt(point),
	}, true
}

// MaterialAt returns the tile material covering the given point on the board
func (c *Chessboard) MaterialAt(point core.Vec3) material.Material {
	tile := int64(math.Floor(point.X*0.5+tileOffset)) + int64(math.Floor(point.Z*0.5))
	if tile%2 == 0 {
		return c.Material1
	}
	return c.Material2
}
