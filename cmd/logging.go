package cmd

import (
	"github.com/urfave/cli"
	"github.com/xiaoyu2006/glens/config"
	"github.com/xiaoyu2006/glens/log"
)

var logger = log.New("glens-sweep")

// Apply the definition log level; the -v and -vv flags take precedence.
func setupLogging(ctx *cli.Context, def *config.Definition) {
	if def != nil {
		level, err := def.Level()
		if err != nil {
			logger.Warningf("ignoring log level: %v", err)
		} else {
			log.SetLevel(level)
		}
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
