package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"github.com/xiaoyu2006/glens/config"
	"github.com/xiaoyu2006/glens/encoder"
	"github.com/xiaoyu2006/glens/metrics"
	"github.com/xiaoyu2006/glens/pipeline"
	"github.com/xiaoyu2006/glens/renderer"
)

// Cancel the returned context on SIGINT/SIGTERM so that the running child
// process is killed.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newPipeline(def *config.Definition, withEncoder bool, rec *metrics.Recorder) (*pipeline.Pipeline, error) {
	drv, err := def.Driver()
	if err != nil {
		return nil, err
	}
	ser, err := def.Serializer()
	if err != nil {
		return nil, err
	}

	rOpts := def.RendererOptions()
	rOpts.Stdout, rOpts.Stderr = os.Stdout, os.Stderr
	r, err := renderer.NewProcess(rOpts)
	if err != nil {
		return nil, err
	}

	p := &pipeline.Pipeline{
		Driver:     drv,
		Serializer: ser,
		Renderer:   r,
		Metrics:    rec,
	}

	if withEncoder && def.Encoder.Enabled {
		eOpts := def.EncoderOptions()
		eOpts.Stdout, eOpts.Stderr = os.Stdout, os.Stderr
		enc, err := encoder.NewFFmpeg(eOpts)
		if err != nil {
			return nil, err
		}
		p.Encoder = enc
	}
	return p, nil
}

// Render every frame of a sweep and assemble the video.
func RenderSweep(ctx *cli.Context) error {
	def, err := loadDefinition(ctx)
	if err != nil {
		return err
	}

	var rec *metrics.Recorder
	metricsFile := ctx.String("metrics-file")
	if metricsFile != "" {
		rec = metrics.NewRecorder(def.Name)
	}

	p, err := newPipeline(def, !ctx.Bool("no-encode"), rec)
	if err != nil {
		return err
	}

	if ctx.Bool("dry-run") {
		return p.DryRun()
	}

	runCtx, stop := signalContext()
	defer stop()

	stats, err := p.Run(runCtx)
	if len(stats.Frames) != 0 {
		displaySweepStats(stats)
	}

	if metricsFile != "" {
		if werr := rec.WriteTextfile(metricsFile); werr != nil {
			logger.Errorf("could not write metrics to %s: %v", metricsFile, werr)
		} else {
			logger.Infof("wrote metrics to %s", metricsFile)
		}
	}
	return err
}

// Render a single frame of a sweep.
func RenderFrame(ctx *cli.Context) error {
	def, err := loadDefinition(ctx)
	if err != nil {
		return err
	}

	p, err := newPipeline(def, false, nil)
	if err != nil {
		return err
	}

	runCtx, stop := signalContext()
	defer stop()

	index := ctx.Int("index")
	if err := p.RenderFrame(runCtx, index); err != nil {
		return err
	}
	logger.Noticef("rendered frame %d to %s", index, p.Driver.Path(index))
	return nil
}

// Assemble previously rendered frames without rendering.
func EncodeSweep(ctx *cli.Context) error {
	def, err := loadDefinition(ctx)
	if err != nil {
		return err
	}
	if !def.Encoder.Enabled {
		return fmt.Errorf("video assembly is disabled for %q", def.Name)
	}

	p, err := newPipeline(def, true, nil)
	if err != nil {
		return err
	}

	runCtx, stop := signalContext()
	defer stop()

	elapsed, err := p.Encode(runCtx)
	if err != nil {
		return err
	}
	logger.Noticef("assembled %d frames in %s", p.Driver.Len(), elapsed)
	return nil
}

func displaySweepStats(stats renderer.SweepStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Mean frame time", "Slowest frame", "Slowest time", "Encode time"})

	slowest, _ := stats.Slowest()
	table.Append([]string{
		fmt.Sprintf("%d", len(stats.Frames)),
		stats.MeanFrameTime().String(),
		fmt.Sprintf("%d", slowest.Frame),
		slowest.RenderTime.String(),
		stats.EncodeTime.String(),
	})
	table.SetFooter([]string{"", "", "", "TOTAL", (stats.RenderTime + stats.EncodeTime).String()})

	table.Render()
	logger.Noticef("sweep statistics\n%s", buf.String())
}
