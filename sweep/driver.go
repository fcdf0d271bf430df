// Package sweep turns a one-dimensional sweep into an ordered sequence of
// frame configs.
//
// A Driver owns nothing but the frame counter. Every frame is derived from
// its index: the sweep value comes from the Spec, the scene comes from the
// build function and the output path from the Naming scheme. Building frame
// k on its own therefore yields exactly the config the full run produces for
// frame k.
package sweep

import (
	"fmt"

	"github.com/xiaoyu2006/glens/scene"
)

type State uint8

const (
	NotStarted State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Frame identifies one step of a sweep.
type Frame struct {
	Index int
	Value float64
	Label string
}

// BuildFunc maps a frame to its scene. It must be a pure function of the
// frame; the driver assigns the output path.
type BuildFunc func(Frame) scene.Config

// Build frames from a scene template.
func TemplateBuilder(tpl *scene.Template) BuildFunc {
	return func(f Frame) scene.Config {
		return tpl.Build(f.Value)
	}
}

// Driver iterates a sweep lazily. It is not restartable mid-run: Reset
// starts again from frame 0.
type Driver struct {
	spec   Spec
	naming Naming
	build  BuildFunc

	state State
	next  int
}

// Create a driver. Spec and naming errors are reported here, before any
// frame is built.
func NewDriver(spec Spec, naming Naming, build BuildFunc) (*Driver, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := naming.Check(spec); err != nil {
		return nil, err
	}
	if build == nil {
		return nil, fmt.Errorf("sweep: no build function defined")
	}

	return &Driver{
		spec:   spec,
		naming: naming,
		build:  build,
	}, nil
}

func (d *Driver) Spec() Spec {
	return d.spec
}

func (d *Driver) Naming() Naming {
	return d.naming
}

// Number of frames in the sweep.
func (d *Driver) Len() int {
	return d.spec.Len()
}

func (d *Driver) State() State {
	return d.state
}

// Next builds the next frame. It returns false once the sweep has completed.
func (d *Driver) Next() (Frame, scene.Config, bool) {
	if d.next >= d.spec.Len() {
		d.state = Completed
		return Frame{}, scene.Config{}, false
	}

	frame, cfg := d.frame(d.next)
	d.next++
	if d.next == d.spec.Len() {
		d.state = Completed
	} else {
		d.state = Running
	}
	return frame, cfg, true
}

// Reset rewinds the driver to frame 0.
func (d *Driver) Reset() {
	d.state = NotStarted
	d.next = 0
}

// Frame builds a single frame without touching the iteration state.
func (d *Driver) Frame(index int) (Frame, scene.Config, error) {
	if index < 0 || index >= d.spec.Len() {
		return Frame{}, scene.Config{}, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameRange, index, d.spec.Len())
	}
	frame, cfg := d.frame(index)
	return frame, cfg, nil
}

// Frames lists every frame of the sweep without building scenes.
func (d *Driver) Frames() []Frame {
	frames := make([]Frame, d.spec.Len())
	for idx := range frames {
		frames[idx] = d.describe(idx)
	}
	return frames
}

// Path returns the output path of a frame.
func (d *Driver) Path(index int) string {
	return d.naming.Path(d.spec, index)
}

// Input describes the rendered frame sequence to the encoder.
func (d *Driver) Input() EncoderInput {
	return d.naming.Input(d.spec)
}

func (d *Driver) describe(index int) Frame {
	return Frame{
		Index: index,
		Value: d.spec.Value(index),
		Label: d.spec.Label(index),
	}
}

func (d *Driver) frame(index int) (Frame, scene.Config) {
	frame := d.describe(index)
	cfg := d.build(frame)
	cfg.OutputPath = d.naming.Path(d.spec, index)
	return frame, cfg
}
