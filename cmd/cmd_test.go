package cmd

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// runRenderOptions parses args with the render flags and returns the options they produce for sc
func runRenderOptions(t *testing.T, sc *scene.Scene, args ...string) renderer.Options {
	t.Helper()

	var got renderer.Options
	app := cli.NewApp()
	app.Commands = []cli.Command{
		{
			Name: "opts",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "width", Value: 1024},
				cli.IntFlag{Name: "height", Value: 768},
				cli.Float64Flag{Name: "fov", Value: 90},
				cli.IntFlag{Name: "max-depth", Value: 4},
			},
			Action: func(ctx *cli.Context) error {
				got = renderOptions(ctx, sc)
				return nil
			},
		},
	}
	if err := app.Run(append([]string{"test", "opts"}, args...)); err != nil {
		t.Fatalf("app.Run: %v", err)
	}
	return got
}

func TestRenderOptions_SceneCameraWithoutFlags(t *testing.T) {
	sc := scene.NewDefaultScene()
	sc.CameraConfig = scene.CameraConfig{Width: 320, Height: 200, FOV: math.Pi / 3}

	opts := runRenderOptions(t, sc)
	if opts.Width != 320 || opts.Height != 200 || opts.FOV != math.Pi/3 {
		t.Errorf("Expected the scene camera, got %dx%d fov %f", opts.Width, opts.Height, opts.FOV)
	}
	if opts.MaxDepth != renderer.DefaultOptions().MaxDepth {
		t.Errorf("Expected default max depth, got %d", opts.MaxDepth)
	}
}

func TestRenderOptions_FlagsOverrideScene(t *testing.T) {
	sc := scene.NewDefaultScene()
	sc.CameraConfig = scene.CameraConfig{Width: 320, Height: 200, FOV: math.Pi / 3}

	opts := runRenderOptions(t, sc, "--width", "64", "--fov", "45", "--max-depth", "1")
	if opts.Width != 64 {
		t.Errorf("Expected width 64, got %d", opts.Width)
	}
	if opts.Height != 200 {
		t.Errorf("Expected height from scene, got %d", opts.Height)
	}
	if math.Abs(opts.FOV-math.Pi/4) > 1e-12 {
		t.Errorf("Expected fov pi/4, got %f", opts.FOV)
	}
	if opts.MaxDepth != 1 {
		t.Errorf("Expected max depth 1, got %d", opts.MaxDepth)
	}
}

func TestLoadScene(t *testing.T) {
	t.Run("empty name uses the default scene", func(t *testing.T) {
		sc, err := loadScene("")
		if err != nil {
			t.Fatalf("loadScene: %v", err)
		}
		if sc.Count() != scene.NewDefaultScene().Count() {
			t.Errorf("Expected default scene contents, got %+v", sc.Count())
		}
	})

	t.Run("scene file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "one.scene")
		if err := os.WriteFile(path, []byte("sphere 0 0 -5 1 ivory\nlight 0 5 0 1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		sc, err := loadScene(path)
		if err != nil {
			t.Fatalf("loadScene: %v", err)
		}
		if got := sc.Count(); got.Spheres != 1 || got.Lights != 1 || got.Chessboards != 0 {
			t.Errorf("Unexpected scene contents %+v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := loadScene(filepath.Join(t.TempDir(), "missing.scene")); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Expected not-exist error, got %v", err)
		}
	})
}

func TestMaterialTable(t *testing.T) {
	table := materialTable()
	for _, name := range material.PresetNames() {
		if !strings.Contains(table, name) {
			t.Errorf("Expected %q in material table:\n%s", name, table)
		}
	}
}

func TestFrameStatsTable(t *testing.T) {
	stats := renderer.RenderStats{
		Width:      4,
		Height:     3,
		Pixels:     12,
		Rays:       integrator.RayCounts{Primary: 12, Shadow: 30, Reflection: 7, Refraction: 5, Hits: 9},
		RenderTime: 2 * time.Second,
	}

	lines := strings.Split(strings.TrimSpace(frameStatsTable(stats)), "\n")
	var header, row []string
	for _, line := range lines {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := strings.Split(strings.Trim(line, "|"), "|")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if header == nil {
			header = cells
		} else {
			row = cells
		}
	}
	if len(header) == 0 || len(header) != len(row) {
		t.Fatalf("Expected a header and a row of equal width:\n%s", strings.Join(lines, "\n"))
	}

	got := make(map[string]string)
	for i := range header {
		got[header[i]] = row[i]
	}
	expected := map[string]string{
		"Frame":      "4x3",
		"Primary":    "12",
		"Shadow":     "30",
		"Total rays": "54",
		"Hits":       "9",
		"Rays/pixel": "4.50",
		"Rays/s":     "27",
	}
	for column, value := range expected {
		if got[column] != value {
			t.Errorf("Column %q: expected %q, got %q", column, value, got[column])
		}
	}
}
