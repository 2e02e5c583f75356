package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

// Print the contents of a scene.
func SceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() > 1 {
		return fmt.Errorf("expected at most one scene file, got %d", ctx.NArg())
	}

	sc, err := loadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("scene statistics\n%s", sc.Stats())
	return nil
}
