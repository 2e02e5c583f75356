package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates four spheres of different materials above a chessboard,
// lit by three point lights
func NewDefaultScene() *Scene {
	s := &Scene{
		Objects: []geometry.Shape{
			&geometry.Sphere{Center: core.NewVec3(-3, 0, -16), Radius: 2, Material: material.Ivory},
			&geometry.Sphere{Center: core.NewVec3(-1, -1.5, -12), Radius: 2, Material: material.Glass},
			&geometry.Sphere{Center: core.NewVec3(1.5, -0.5, -18), Radius: 3, Material: material.RedRubber},
			&geometry.Sphere{Center: core.NewVec3(7, 5, -18), Radius: 4, Material: material.Mirror},
			geometry.NewChessboard(material.CheckerLight, material.CheckerDark),
		},
		Lights: []lights.PointLight{
			{Position: core.NewVec3(-20, 20, 20), Intensity: 1.5},
			{Position: core.NewVec3(30, 50, -25), Intensity: 1.8},
			{Position: core.NewVec3(30, 20, 30), Intensity: 1.7},
		},
		CameraConfig: DefaultCameraConfig(),
	}
	return s
}
