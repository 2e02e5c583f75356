package material

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var (
	// Ivory is a dull off-white with a soft highlight
	Ivory = NewMaterial(core.NewVec3(0.4, 0.4, 0.3), Albedo{0.6, 0.3, 0.1, 0.0}, 50, 1.0)

	// Glass is mostly transparent with a sharp highlight
	Glass = NewMaterial(core.NewVec3(0.6, 0.7, 0.8), Albedo{0.0, 0.5, 0.1, 0.8}, 125, 1.5)

	// RedRubber is almost purely diffuse
	RedRubber = NewMaterial(core.NewVec3(0.3, 0.1, 0.1), Albedo{0.9, 0.1, 0.0, 0.0}, 10, 1.0)

	// Mirror over-weights the specular term on purpose to get a hot highlight
	Mirror = NewMaterial(core.NewVec3(1.0, 1.0, 1.0), Albedo{0.0, 10.0, 0.8, 0.0}, 1425, 1.0)

	// CheckerLight and CheckerDark are the two chessboard tiles
	CheckerLight = NewMaterial(core.NewVec3(0.3, 0.3, 0.3), Albedo{1.0, 0.0, 0.0, 0.0}, 0, 1.0)
	CheckerDark  = NewMaterial(core.NewVec3(0.3, 0.2, 0.1), Albedo{1.0, 0.0, 0.0, 0.0}, 0, 1.0)
)

var presets = map[string]Material{
	"ivory":         Ivory,
	"glass":         Glass,
	"red_rubber":    RedRubber,
	"mirror":        Mirror,
	"checker_light": CheckerLight,
	"checker_dark":  CheckerDark,
}

// Preset looks up a built-in material by name
func Preset(name string) (Material, bool) {
	m, ok := presets[name]
	return m, ok
}

// PresetNames returns the names of the built-in materials in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
