// Package pipeline runs a sweep end to end: build each frame, serialize it,
// hand it to the renderer and, once every frame is done, assemble the video.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xiaoyu2006/glens/encoder"
	"github.com/xiaoyu2006/glens/log"
	"github.com/xiaoyu2006/glens/metrics"
	"github.com/xiaoyu2006/glens/renderer"
	"github.com/xiaoyu2006/glens/scene"
	"github.com/xiaoyu2006/glens/sweep"
)

var logger = log.New("pipeline")

var ErrNoDriver = errors.New("pipeline: no sweep driver defined")

// FrameError reports the frame a sweep stopped at.
type FrameError struct {
	Frame int
	Path  string
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("pipeline: frame %d (%s): %v", e.Frame, e.Path, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// Pipeline processes frames strictly in order, one at a time. The first
// failing frame aborts the sweep and the video is not assembled.
type Pipeline struct {
	Driver     *sweep.Driver
	Serializer scene.Serializer
	Renderer   renderer.Renderer

	// Optional; a nil Encoder skips the assembly step.
	Encoder encoder.Encoder

	// Optional metrics sink.
	Metrics *metrics.Recorder

	// Directory created before rendering. Defaults to the naming scheme's
	// output directory.
	OutputDir string
}

func (p *Pipeline) outputDir() string {
	if p.OutputDir != "" {
		return p.OutputDir
	}
	return p.Driver.Naming().OutputDir()
}

func (p *Pipeline) prepare() error {
	if p.Driver == nil {
		return ErrNoDriver
	}
	if dir := p.outputDir(); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("pipeline: could not create output dir: %w", err)
		}
	}
	return nil
}

// Run renders every frame of the sweep and then encodes them once.
func (p *Pipeline) Run(ctx context.Context) (renderer.SweepStats, error) {
	if err := p.prepare(); err != nil {
		return renderer.SweepStats{}, err
	}

	p.Driver.Reset()
	p.Renderer.ResetStats()
	p.Metrics.SetSweepFrames(p.Driver.Len())
	logger.Noticef("rendering %d frames into %s", p.Driver.Len(), p.outputDir())

	start := time.Now()
	for {
		frame, cfg, ok := p.Driver.Next()
		if !ok {
			break
		}
		if err := p.render(ctx, frame, &cfg); err != nil {
			return p.Renderer.Stats(), err
		}
	}
	logger.Noticef("rendered %d frames in %d ms", p.Driver.Len(), time.Since(start).Nanoseconds()/1000000)

	stats := p.Renderer.Stats()
	if p.Encoder == nil {
		logger.Info("skipping video assembly")
		return stats, nil
	}

	encodeTime, err := p.Encode(ctx)
	stats.EncodeTime = encodeTime
	return stats, err
}

// RenderFrame renders a single frame in isolation. The frame is identical
// to the one a full run renders at the same index.
func (p *Pipeline) RenderFrame(ctx context.Context, index int) error {
	if err := p.prepare(); err != nil {
		return err
	}

	frame, cfg, err := p.Driver.Frame(index)
	if err != nil {
		return err
	}
	return p.render(ctx, frame, &cfg)
}

// Encode runs only the assembly step over the frames the sweep names.
func (p *Pipeline) Encode(ctx context.Context) (time.Duration, error) {
	if p.Driver == nil {
		return 0, ErrNoDriver
	}
	if p.Encoder == nil {
		return 0, errors.New("pipeline: no encoder defined")
	}

	start := time.Now()
	if err := p.Encoder.Encode(ctx, p.Driver.Input()); err != nil {
		return time.Since(start), err
	}
	elapsed := time.Since(start)
	p.Metrics.ObserveEncode(elapsed)
	return elapsed, nil
}

// DryRun serializes every frame and logs the renderer arguments without
// running anything.
func (p *Pipeline) DryRun() error {
	if p.Driver == nil {
		return ErrNoDriver
	}

	for idx := 0; idx < p.Driver.Len(); idx++ {
		frame, cfg, err := p.Driver.Frame(idx)
		if err != nil {
			return err
		}
		args, err := p.Serializer.Serialize(&cfg)
		if err != nil {
			return &FrameError{Frame: frame.Index, Path: cfg.OutputPath, Err: err}
		}
		logger.Noticef("frame %d [%s]: %s", frame.Index, frame.Label, strings.Join(args, " "))
	}

	if p.Encoder != nil {
		in := p.Driver.Input()
		logger.Noticef("encode %d frames from %s", in.Frames, in.Pattern)
	}
	return nil
}

func (p *Pipeline) render(ctx context.Context, frame sweep.Frame, cfg *scene.Config) error {
	if err := ctx.Err(); err != nil {
		return &FrameError{Frame: frame.Index, Path: cfg.OutputPath, Err: fmt.Errorf("%w: %v", renderer.ErrInterrupted, err)}
	}

	args, err := p.Serializer.Serialize(cfg)
	if err != nil {
		p.Metrics.FrameFailed()
		return &FrameError{Frame: frame.Index, Path: cfg.OutputPath, Err: err}
	}

	logger.Infof("frame %d/%d [%s] -> %s", frame.Index+1, p.Driver.Len(), frame.Label, cfg.OutputPath)
	start := time.Now()
	if err := p.Renderer.Render(ctx, frame.Index, args); err != nil {
		p.Metrics.FrameFailed()
		return &FrameError{Frame: frame.Index, Path: cfg.OutputPath, Err: err}
	}
	p.Metrics.ObserveFrame(time.Since(start))
	return nil
}
