package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// MockShape implements geometry.Shape for testing
type MockShape struct {
	hitFn func(ray core.Ray) (*geometry.Intersection, bool)
}

func (m MockShape) Hit(ray core.Ray) (*geometry.Intersection, bool) {
	return m.hitFn(ray)
}

func hitAt(distance float64, mat material.Material) MockShape {
	return MockShape{hitFn: func(ray core.Ray) (*geometry.Intersection, bool) {
		return &geometry.Intersection{Distance: distance, Point: ray.At(distance), Normal: core.NewVec3(0, 0, 1), Material: mat}, true
	}}
}

func miss() MockShape {
	return MockShape{hitFn: func(ray core.Ray) (*geometry.Intersection, bool) { return nil, false }}
}

func TestScene_Hit_Nearest(t *testing.T) {
	ray := core.NewRay(core.Zero(), core.NewVec3(0, 0, -1))

	tests := []struct {
		name     string
		objects  []geometry.Shape
		wantHit  bool
		distance float64
		material material.Material
	}{
		{"empty scene", nil, false, 0, material.Material{}},
		{"all miss", []geometry.Shape{miss(), miss()}, false, 0, material.Material{}},
		{"single hit", []geometry.Shape{miss(), hitAt(3, material.Glass)}, true, 3, material.Glass},
		{"nearest wins", []geometry.Shape{hitAt(7, material.Ivory), hitAt(2, material.Mirror), hitAt(5, material.Glass)}, true, 2, material.Mirror},
		{"ties keep first", []geometry.Shape{hitAt(4, material.Ivory), hitAt(4, material.Glass)}, true, 4, material.Ivory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scene{Objects: tt.objects}
			hit, isHit := s.Hit(ray)
			if isHit != tt.wantHit {
				t.Fatalf("Expected hit=%t, got %t", tt.wantHit, isHit)
			}
			if !isHit {
				if hit != nil {
					t.Errorf("Expected nil intersection on miss, got %v", hit)
				}
				return
			}
			if hit.Distance != tt.distance {
				t.Errorf("Expected distance %f, got %f", tt.distance, hit.Distance)
			}
			if hit.Material != tt.material {
				t.Errorf("Expected material %v, got %v", tt.material, hit.Material)
			}
		})
	}
}

func TestScene_Hit_RealShapes(t *testing.T) {
	s := NewDefaultScene()

	// Straight down from the origin reaches the board
	hit, isHit := s.Hit(core.NewRay(core.Zero(), core.NewVec3(0, -1, 0)))
	if !isHit {
		t.Fatal("Expected to hit the chessboard")
	}
	if math.Abs(hit.Point.Y+4) > 1e-9 {
		t.Errorf("Expected hit on plane y=-4, got %v", hit.Point)
	}

	// Towards the glass sphere, which sits in front of the board
	dir := core.NewVec3(-1, -1.5, -12).Normalize()
	hit, isHit = s.Hit(core.NewRay(core.Zero(), dir))
	if !isHit {
		t.Fatal("Expected to hit the glass sphere")
	}
	if hit.Material != material.Glass {
		t.Errorf("Expected glass, got %v", hit.Material)
	}
}

func TestNew_Validation(t *testing.T) {
	good := &geometry.Sphere{Center: core.NewVec3(0, 0, -5), Radius: 1, Material: material.Ivory}
	light := lights.PointLight{Position: core.Zero(), Intensity: 1}

	tests := []struct {
		name    string
		objects []geometry.Shape
		lights  []lights.PointLight
		wantErr error
	}{
		{"valid", []geometry.Shape{good}, []lights.PointLight{light}, nil},
		{"empty", nil, nil, nil},
		{"nil shape", []geometry.Shape{good, nil}, nil, ErrNilShape},
		{"bad radius", []geometry.Shape{&geometry.Sphere{Radius: 0}}, nil, geometry.ErrInvalidRadius},
		{"bad light", nil, []lights.PointLight{{Intensity: -1}}, lights.ErrInvalidIntensity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.objects, tt.lights)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if s.CameraConfig != DefaultCameraConfig() {
					t.Errorf("Expected default camera, got %v", s.CameraConfig)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if s != nil {
				t.Errorf("Expected nil scene on error")
			}
		})
	}
}

func TestScene_Adders(t *testing.T) {
	s := &Scene{}
	if err := s.AddSphere(core.NewVec3(0, 0, -3), 1, material.Ivory); err != nil {
		t.Fatalf("AddSphere: %v", err)
	}
	if err := s.AddSphere(core.Zero(), -1, material.Ivory); !errors.Is(err, geometry.ErrInvalidRadius) {
		t.Errorf("Expected ErrInvalidRadius, got %v", err)
	}
	s.AddChessboard(material.CheckerLight, material.CheckerDark)
	if err := s.AddLight(core.NewVec3(0, 5, 0), 1); err != nil {
		t.Fatalf("AddLight: %v", err)
	}
	if err := s.AddLight(core.Zero(), 0); !errors.Is(err, lights.ErrInvalidIntensity) {
		t.Errorf("Expected ErrInvalidIntensity, got %v", err)
	}

	counts := s.Count()
	if counts.Spheres != 1 || counts.Chessboards != 1 || counts.Lights != 1 || counts.Other != 0 {
		t.Errorf("Unexpected counts %+v", counts)
	}
}

func TestDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default scene is invalid: %v", err)
	}

	counts := s.Count()
	if counts.Spheres != 4 || counts.Chessboards != 1 || counts.Lights != 3 {
		t.Errorf("Unexpected default scene contents %+v", counts)
	}
}

func TestScene_Stats(t *testing.T) {
	out := NewDefaultScene().Stats()

	for _, want := range []string{"Spheres", "Chessboards", "Point", "1024x768", "90.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected stats to contain %q:\n%s", want, out)
		}
	}
}

func TestCameraConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  CameraConfig
		wantErr bool
	}{
		{"default", DefaultCameraConfig(), false},
		{"zero width", CameraConfig{Width: 0, Height: 10, FOV: 1}, true},
		{"negative height", CameraConfig{Width: 10, Height: -1, FOV: 1}, true},
		{"zero fov", CameraConfig{Width: 10, Height: 10, FOV: 0}, true},
		{"fov too wide", CameraConfig{Width: 10, Height: 10, FOV: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
