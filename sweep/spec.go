package sweep

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/xiaoyu2006/glens/orbit"
	"github.com/xiaoyu2006/glens/scene"
)

// Upper bound for the number of frames a single sweep may produce.
const MaxFrames = 1000000

// Tolerance applied when deciding whether the last linear step lands on the
// end value.
const linearEpsilon = 1e-9

var (
	ErrZeroStep      = errors.New("sweep: step must not be zero")
	ErrNonFinite     = errors.New("sweep: bounds must be finite")
	ErrEmpty         = errors.New("sweep: range produces no frames")
	ErrTooManyFrames = fmt.Errorf("sweep: range produces more than %d frames", MaxFrames)
	ErrStepTooSmall  = errors.New("sweep: step too small to produce distinct values")
	ErrFrameRange    = errors.New("sweep: frame index out of range")
	ErrNaming        = errors.New("sweep: naming scheme does not fit sweep")
)

type Kind uint8

const (
	LinearKind Kind = iota
	AngularKind
)

func (k Kind) String() string {
	switch k {
	case LinearKind:
		return "linear"
	case AngularKind:
		return "angular"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// The Spec interface is implemented by all sweep variable generators. Values
// are computed from the frame index alone.
type Spec interface {
	Kind() Kind

	// Check the spec for configuration errors.
	Validate() error

	// Number of frames. Invalid specs report zero frames.
	Len() int

	// The sweep value for a frame.
	Value(frame int) float64

	// A human readable form of the sweep value for a frame.
	Label(frame int) string
}

// Linear sweeps a real value from Start towards End. Every frame advances the
// value before it is used, so frame 0 renders Start+Step. Frames keep coming
// while the value before the increment has not passed End.
type Linear struct {
	Start float64
	End   float64
	Step  float64
}

func (l Linear) Kind() Kind {
	return LinearKind
}

func (l Linear) count() (int, error) {
	for _, v := range []float64{l.Start, l.End, l.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrNonFinite
		}
	}
	if l.Step == 0 {
		return 0, ErrZeroStep
	}

	steps := (l.End - l.Start) / l.Step
	switch {
	case math.IsInf(steps, 0):
		return 0, ErrTooManyFrames
	case steps < -linearEpsilon:
		return 0, ErrEmpty
	case steps >= MaxFrames:
		return 0, ErrTooManyFrames
	}
	n := int(math.Floor(steps+linearEpsilon)) + 1
	if n > 1 && !l.distinct(n) {
		return 0, ErrStepTooSmall
	}
	return n, nil
}

// distinct reports whether the n values of the sweep are pairwise different
// once rounded. Values are computed as Start+(k+1)*Step, which accumulates at
// most two roundings of the product and two of the sum between neighbours;
// each is bounded by the spacing of floats at the largest magnitude involved.
func (l Linear) distinct(n int) bool {
	m := math.Max(math.Abs(l.Start), math.Max(math.Abs(l.Value(0)), math.Abs(l.Value(n-1))))
	spacing := m - math.Nextafter(m, 0)
	return math.Abs(l.Step) > 6*spacing
}

func (l Linear) Validate() error {
	_, err := l.count()
	return err
}

func (l Linear) Len() int {
	n, _ := l.count()
	return n
}

func (l Linear) Value(frame int) float64 {
	return l.Start + float64(frame+1)*l.Step
}

func (l Linear) Label(frame int) string {
	return scene.FormatFloat(l.Value(frame))
}

// Angular sweeps whole degrees over [StartDegrees, EndDegrees). Values are
// reported in radians.
type Angular struct {
	StartDegrees int
	EndDegrees   int
	StepDegrees  int
}

func (a Angular) Kind() Kind {
	return AngularKind
}

func (a Angular) count() (int, error) {
	if a.StepDegrees == 0 {
		return 0, ErrZeroStep
	}

	// Unsigned arithmetic keeps spans across the whole int range exact.
	var span, step uint64
	if a.StepDegrees > 0 && a.EndDegrees > a.StartDegrees {
		span, step = uint64(a.EndDegrees-a.StartDegrees), uint64(a.StepDegrees)
	} else if a.StepDegrees < 0 && a.EndDegrees < a.StartDegrees {
		span, step = uint64(a.StartDegrees-a.EndDegrees), uint64(-a.StepDegrees)
	} else {
		return 0, ErrEmpty
	}

	n := span / step
	if span%step != 0 {
		n++
	}

	switch {
	case n == 0:
		return 0, ErrEmpty
	case n > MaxFrames:
		return 0, ErrTooManyFrames
	}
	return int(n), nil
}

func (a Angular) Validate() error {
	_, err := a.count()
	return err
}

func (a Angular) Len() int {
	n, _ := a.count()
	return n
}

// Degrees returns the integer angle of a frame.
func (a Angular) Degrees(frame int) int {
	return a.StartDegrees + frame*a.StepDegrees
}

func (a Angular) Value(frame int) float64 {
	return orbit.Radians(float64(a.Degrees(frame)))
}

func (a Angular) Label(frame int) string {
	return strconv.Itoa(a.Degrees(frame))
}
