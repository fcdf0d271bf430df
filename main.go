package main

import (
	"os"

	"github.com/urfave/cli"
	"github.com/xiaoyu2006/glens/cmd"
	"github.com/xiaoyu2006/glens/log"
)

var logger = log.New("glens-sweep")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "glens-sweep"
	app.Usage = "render gravitational lensing animations by sweeping a scene parameter"
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
			Name:  "run",
			Usage: "render every frame of a sweep and assemble the video",
			Description: `
Build the scene for each sweep value, invoke the renderer once per frame and,
after the last frame, run ffmpeg over the rendered images.

The sweep definition is a yaml, json or toml file (local path or http/https
URL). Use --preset to run one of the built-in definitions instead.`,
			ArgsUsage: "[definition]",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "dry-run, n",
					Usage: "log renderer arguments for every frame without running anything",
				},
				cli.BoolFlag{
					Name:  "no-encode",
					Usage: "skip video assembly",
				},
				cli.StringFlag{
					Name:  "metrics-file",
					Usage: "write prometheus metrics to this textfile when the run ends",
				},
			}, cmd.DefinitionFlags...),
			Action: cmd.RenderSweep,
		},
		{
			Name:        "frame",
			Usage:       "render a single frame of a sweep",
			Description: `Render one frame exactly as a full run would render it.`,
			ArgsUsage:   "[definition]",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "index, i",
					Usage: "zero-based frame index",
				},
			}, cmd.DefinitionFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:      "plan",
			Usage:     "list the frames of a sweep without rendering",
			ArgsUsage: "[definition]",
			Flags:     cmd.DefinitionFlags,
			Action:    cmd.PlanSweep,
		},
		{
			Name:      "encode",
			Usage:     "assemble already rendered frames into a video",
			ArgsUsage: "[definition]",
			Flags:     cmd.DefinitionFlags,
			Action:    cmd.EncodeSweep,
		},
		{
			Name:   "presets",
			Usage:  "list built-in sweep definitions",
			Action: cmd.ListPresets,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
