package cmd

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/writer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() > 1 {
		return fmt.Errorf("expected at most one scene file, got %d", ctx.NArg())
	}

	imgFile := ctx.String("out")
	if _, err := writer.FormatFromFilename(imgFile); err != nil {
		return err
	}

	sc, err := loadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	opts := renderOptions(ctx, sc)
	opts.Progress = logProgress

	rt, err := renderer.NewRaytracer(sc, opts)
	if err != nil {
		return err
	}

	frame, stats := rt.Render()

	// Export frame
	start := time.Now()
	if err := writer.WriteFile(imgFile, frame.Image()); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Milliseconds())

	displayFrameStats(stats)
	return nil
}

// loadScene reads a scene file, or returns the built-in scene when filename is empty.
func loadScene(filename string) (*scene.Scene, error) {
	if filename == "" {
		logger.Info("no scene file given, using the default scene")
		return scene.NewDefaultScene(), nil
	}
	return loaders.LoadScene(filename)
}

// renderOptions starts from the camera recommended by the scene and applies
// the flags that were explicitly set.
func renderOptions(ctx *cli.Context, sc *scene.Scene) renderer.Options {
	opts := renderer.OptionsForScene(sc)
	if ctx.IsSet("width") {
		opts.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		opts.Height = ctx.Int("height")
	}
	if ctx.IsSet("fov") {
		opts.FOV = ctx.Float64("fov") * math.Pi / 180
	}
	if ctx.IsSet("max-depth") {
		opts.MaxDepth = ctx.Int("max-depth")
	}
	return opts
}

func logProgress(row, rows int) {
	step := max(rows/10, 1)
	if row%step == 0 || row == rows {
		logger.Infof("rendered %d/%d rows (%02.1f %%)", row, rows, 100*float64(row)/float64(rows))
	}
}

func displayFrameStats(stats renderer.RenderStats) {
	logger.Noticef("frame statistics\n%s", frameStatsTable(stats))
}

func frameStatsTable(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Primary", "Shadow", "Reflection", "Refraction", "Total rays", "Hits", "Rays/pixel", "Rays/s", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Rays.Primary),
		fmt.Sprintf("%d", stats.Rays.Shadow),
		fmt.Sprintf("%d", stats.Rays.Reflection),
		fmt.Sprintf("%d", stats.Rays.Refraction),
		fmt.Sprintf("%d", stats.Rays.Total()),
		fmt.Sprintf("%d", stats.Rays.Hits),
		fmt.Sprintf("%.2f", stats.RaysPerPixel()),
		fmt.Sprintf("%.0f", stats.RaysPerSecond()),
		stats.RenderTime.String(),
	})

	table.Render()
	return buf.String()
}
