package cmd

import (
	"errors"

	"github.com/urfave/cli"
	"github.com/xiaoyu2006/glens/config"
)

var errNoDefinition = errors.New("missing sweep definition argument or --preset")

// Flags shared by every command that loads a definition.
var DefinitionFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "preset, p",
		Usage: "use a built-in sweep definition instead of a file",
	},
	cli.StringFlag{
		Name:  "renderer, r",
		Usage: "override the renderer binary",
	},
}

// Load the definition named by the first argument or the --preset flag and
// configure logging from it.
func loadDefinition(ctx *cli.Context) (*config.Definition, error) {
	var (
		def *config.Definition
		err error
	)

	switch {
	case ctx.String("preset") != "" && ctx.NArg() != 0:
		return nil, errors.New("a definition file and --preset are mutually exclusive")
	case ctx.String("preset") != "":
		def, err = config.Preset(ctx.String("preset"))
	case ctx.NArg() == 1:
		def, err = config.Load(ctx.Args().First())
	default:
		return nil, errNoDefinition
	}
	if err != nil {
		return nil, err
	}

	if bin := ctx.String("renderer"); bin != "" {
		def.Renderer.Binary = bin
	}

	setupLogging(ctx, def)
	return def, nil
}
