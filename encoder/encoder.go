// Package encoder assembles rendered frames into a video by running ffmpeg
// once per sweep.
package encoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xiaoyu2006/glens/log"
	"github.com/xiaoyu2006/glens/process"
	"github.com/xiaoyu2006/glens/sweep"
)

var logger = log.New("encoder")

var (
	ErrFrameRate = errors.New("encoder: frame rate must be positive")
	ErrNoFrames  = errors.New("encoder: no frames to encode")
	ErrNoOutput  = errors.New("encoder: no output file defined")
)

// The Encoder interface is implemented by all video assemblers.
type Encoder interface {
	// Encode the frame sequence described by in. Called once, after
	// every frame rendered successfully.
	Encode(ctx context.Context, in sweep.EncoderInput) error
}

type Options struct {
	// Path to the ffmpeg executable. Defaults to "ffmpeg".
	Binary string

	FrameRate int
	Codec     string

	// Optional video bitrate, e.g. "5000k".
	Bitrate string

	// Output video. Relative paths are placed in the frame directory.
	Output string

	// Extra arguments placed before the output file.
	ExtraArgs []string

	// ffmpeg output sinks. Nil discards the output.
	Stdout io.Writer
	Stderr io.Writer
}

// FFmpeg encodes frames with ffmpeg's image sequence demuxer.
type FFmpeg struct {
	opts Options
	run  process.Runner
}

func NewFFmpeg(opts Options) (*FFmpeg, error) {
	if opts.Binary == "" {
		opts.Binary = "ffmpeg"
	}
	if opts.FrameRate <= 0 {
		return nil, ErrFrameRate
	}
	if opts.Output == "" {
		return nil, ErrNoOutput
	}
	return &FFmpeg{opts: opts, run: process.Run}, nil
}

// Get the output path for a frame sequence.
func (f *FFmpeg) OutputPath(in sweep.EncoderInput) string {
	if filepath.IsAbs(f.opts.Output) {
		return f.opts.Output
	}
	return filepath.Join(in.Dir, f.opts.Output)
}

// Args builds the ffmpeg argument list. The input pattern comes straight from
// the naming scheme that produced the frames and the output is capped at the
// sweep's frame count.
func (f *FFmpeg) Args(in sweep.EncoderInput) []string {
	args := []string{"-framerate", strconv.Itoa(f.opts.FrameRate)}
	if in.Glob {
		args = append(args, "-pattern_type", "glob")
	} else {
		args = append(args, "-start_number", strconv.Itoa(in.StartNumber))
	}
	args = append(args, "-i", in.Pattern)
	if f.opts.Codec != "" {
		args = append(args, "-vcodec", f.opts.Codec)
	}
	if f.opts.Bitrate != "" {
		args = append(args, "-b:v", f.opts.Bitrate)
	}
	// Stale frames left by a longer earlier sweep are not picked up.
	if in.Frames > 0 {
		args = append(args, "-frames:v", strconv.Itoa(in.Frames))
	}
	args = append(args, f.opts.ExtraArgs...)
	return append(args, "-y", f.OutputPath(in))
}

func (f *FFmpeg) Encode(ctx context.Context, in sweep.EncoderInput) error {
	if in.Frames <= 0 {
		return ErrNoFrames
	}

	args := f.Args(in)
	logger.Noticef("encoding %d frames into %s", in.Frames, f.OutputPath(in))
	logger.Debugf("%s", process.CommandLine(f.opts.Binary, args))

	start := time.Now()
	err := f.run(ctx, process.Command{
		Binary: f.opts.Binary,
		Args:   args,
		Stdout: f.opts.Stdout,
		Stderr: f.opts.Stderr,
	})
	if err != nil {
		return fmt.Errorf("encoder: %w", err)
	}
	logger.Infof("encoded video in %d ms", time.Since(start).Nanoseconds()/1000000)
	return nil
}
