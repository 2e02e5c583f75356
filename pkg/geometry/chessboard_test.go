package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestChessboard_Hit_Basic(t *testing.T) {
	board := NewChessboard(material.CheckerLight, material.CheckerDark)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))

	hit, isHit := board.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.Distance-4) > 1e-9 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if hit.Point.Subtract(core.NewVec3(0, -4, 0)).Length() > 1e-9 {
		t.Errorf("Expected point on plane, got %v", hit.Point)
	}
	if hit.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected up normal, got %v", hit.Normal)
	}
}

func TestChessboard_Hit_Parallel(t *testing.T) {
	board := NewChessboard(material.CheckerLight, material.CheckerDark)

	origins := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, -4, 0),
		core.NewVec3(5, -100, 3),
	}
	directions := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0.0009, -1).Normalize(),
		core.NewVec3(1, -0.0009, 1).Normalize(),
	}

	for _, origin := range origins {
		for _, dir := range directions {
			if hit, isHit := board.Hit(core.NewRay(origin, dir)); isHit {
				t.Errorf("Expected miss for origin %v dir %v, got distance %f", origin, dir, hit.Distance)
			}
		}
	}
}

func TestChessboard_Hit_Behind(t *testing.T) {
	board := NewChessboard(material.CheckerLight, material.CheckerDark)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"above looking up", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))},
		{"below looking down", core.NewRay(core.NewVec3(0, -6, 0), core.NewVec3(0, -1, 0))},
		{"on the plane", core.NewRay(core.NewVec3(0, -4, 0), core.NewVec3(0, -1, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, isHit := board.Hit(tt.ray); isHit {
				t.Errorf("Expected miss, got hit at distance %f", hit.Distance)
			}
		})
	}
}

func TestChessboard_Hit_FromBelow(t *testing.T) {
	board := NewChessboard(material.CheckerLight, material.CheckerDark)
	ray := core.NewRay(core.NewVec3(0, -6, 0), core.NewVec3(0, 1, 0))

	hit, isHit := board.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.Distance-2) > 1e-9 {
		t.Errorf("Expected distance 2, got %f", hit.Distance)
	}
}

func TestChessboard_CustomHeight(t *testing.T) {
	board := &Chessboard{Material1: material.CheckerLight, Material2: material.CheckerDark, Height: 1.5}
	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))

	hit, isHit := board.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.Distance-1.5) > 1e-9 {
		t.Errorf("Expected distance 1.5, got %f", hit.Distance)
	}
}

func TestChessboard_MaterialAt(t *testing.T) {
	board := NewChessboard(material.CheckerLight, material.CheckerDark)

	tests := []struct {
		name     string
		x, z     float64
		expected material.Material
	}{
		{"origin", 0.5, 0.5, material.CheckerLight},
		{"next tile in x", 2.5, 0.5, material.CheckerDark},
		{"next tile in z", 0.5, 2.5, material.CheckerDark},
		{"diagonal", 2.5, 2.5, material.CheckerLight},
		{"negative x", -0.5, 0.5, material.CheckerDark},
		{"negative z", 0.5, -0.5, material.CheckerDark},
		{"negative both", -0.5, -0.5, material.CheckerLight},
		{"far away", 13, -27, material.CheckerLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := board.MaterialAt(core.NewVec3(tt.x, -4, tt.z))
			if got != tt.expected {
				t.Errorf("Expected %v at (%f, %f), got %v", tt.expected, tt.x, tt.z, got)
			}
		})
	}
}
