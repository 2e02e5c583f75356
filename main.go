package main

import (
	"os"

	"github.com/df07/go-whitted-raytracer/cmd"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes using recursive whitted-style ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Trace one primary ray per pixel, following mirror reflections and refractions
up to the maximum depth, and write the frame to an image file. The image format
is picked from the file extension (.png, .bmp, .tif or .tiff).

Without a scene file the built-in scene of four spheres above a chessboard is
rendered. Frame size and field of view default to the scene's camera directive.`,
			ArgsUsage: "[scene_file.scene]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 1024,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 768,
					Usage: "frame height",
				},
				cli.Float64Flag{
					Name:  "fov",
					Value: 90,
					Usage: "horizontal field of view in degrees",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 4,
					Usage: "deepest reflection/refraction level that is shaded",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "out.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:      "scene",
			Usage:     "print scene statistics",
			ArgsUsage: "[scene_file.scene]",
			Action:    cmd.SceneInfo,
		},
		{
			Name:  "serve",
			Usage: "serve renders and pixel inspection over http",
			Description: `
Start a web server exposing the renderer:

  /api/render         render a frame and return it as a PNG image
  /api/render-stream  render a frame, streaming row progress as server-sent events
  /api/inspect        describe what the primary ray of pixel (x, y) hits
  /api/scene-config   report the camera defaults and contents of a scene

Requests select a scene with ?scene=<name>. "default" is the built-in scene,
other names are loaded from <scenes>/<name>.scene.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
				cli.StringFlag{
					Name:  "scenes",
					Value: "scenes",
					Usage: "directory holding .scene files",
				},
			},
			Action: cmd.Serve,
		},
		{
			Name:   "materials",
			Usage:  "list the built-in materials",
			Action: cmd.ListMaterials,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
