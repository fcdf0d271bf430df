package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/xiaoyu2006/glens/log"
	"github.com/xiaoyu2006/glens/process"
)

var logger = log.New("renderer")

// Process renders frames by running the external renderer once per frame.
type Process struct {
	opts  Options
	run   process.Runner
	stats SweepStats
}

// Create a renderer that invokes opts.Binary.
func NewProcess(opts Options) (*Process, error) {
	if opts.Binary == "" {
		return nil, ErrNoBinary
	}
	return &Process{
		opts: opts,
		run:  process.Run,
	}, nil
}

// Render runs the renderer and waits for it to exit. A non-zero exit status
// or a failure to launch fails the frame. The output image is not checked.
func (p *Process) Render(ctx context.Context, frame int, args []string) error {
	if len(args) == 0 {
		return ErrNoArgs
	}

	cmdArgs := make([]string, 0, len(p.opts.ExtraArgs)+len(args))
	cmdArgs = append(cmdArgs, p.opts.ExtraArgs...)
	cmdArgs = append(cmdArgs, args...)

	logger.Debugf("frame %d: %s", frame, process.CommandLine(p.opts.Binary, cmdArgs))

	start := time.Now()
	err := p.run(ctx, process.Command{
		Binary: p.opts.Binary,
		Args:   cmdArgs,
		Dir:    p.opts.WorkDir,
		Stdout: p.opts.Stdout,
		Stderr: p.opts.Stderr,
	})
	elapsed := time.Since(start)

	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: frame %d: %v", ErrInterrupted, frame, err)
		}
		return fmt.Errorf("renderer: frame %d: %w", frame, err)
	}

	p.stats.Frames = append(p.stats.Frames, FrameStat{
		Frame:      frame,
		NumArgs:    len(cmdArgs),
		RenderTime: elapsed,
	})
	p.stats.RenderTime += elapsed
	logger.Infof("rendered frame %d in %d ms", frame, elapsed.Nanoseconds()/1000000)
	return nil
}

// Get render statistics for the frames rendered so far.
func (p *Process) Stats() SweepStats {
	stats := p.stats
	stats.Frames = append([]FrameStat(nil), p.stats.Frames...)
	return stats
}

func (p *Process) ResetStats() {
	p.stats = SweepStats{}
}
