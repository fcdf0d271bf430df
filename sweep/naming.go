package sweep

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Default zero-padded width of angle suffixes.
const DefaultAngleWidth = 3

// EncoderInput tells the encoder how to find the frames of a sweep. It is
// produced by the same Naming scheme that names the frames.
type EncoderInput struct {
	// Directory holding the frames.
	Dir string

	// A printf style sequence pattern, or a glob pattern if Glob is set.
	Pattern string
	Glob    bool

	// First number of a printf style sequence.
	StartNumber int

	// Expected number of frames.
	Frames int
}

// The Naming interface is implemented by all frame output naming schemes.
type Naming interface {
	// Check that the scheme can name every frame of spec uniquely.
	Check(spec Spec) error

	// Get the output path of a frame.
	Path(spec Spec, frame int) string

	// Describe the frame sequence to the encoder.
	Input(spec Spec) EncoderInput

	// The directory frames are written to.
	OutputDir() string
}

// Sequential names frames with consecutive integers starting at First.
type Sequential struct {
	Dir    string
	Prefix string
	Ext    string
	First  int
}

func (s Sequential) Check(spec Spec) error {
	if s.First < 0 {
		return fmt.Errorf("%w: sequential numbering must start at a non-negative index; got %d", ErrNaming, s.First)
	}
	return nil
}

func (s Sequential) Path(_ Spec, frame int) string {
	return filepath.Join(s.Dir, s.Prefix+strconv.Itoa(s.First+frame)+s.Ext)
}

func (s Sequential) Input(spec Spec) EncoderInput {
	escape := func(v string) string { return strings.ReplaceAll(v, "%", "%%") }
	return EncoderInput{
		Dir:         s.Dir,
		Pattern:     filepath.Join(escape(s.Dir), escape(s.Prefix)+"%d"+escape(s.Ext)),
		StartNumber: s.First,
		Frames:      spec.Len(),
	}
}

func (s Sequential) OutputDir() string {
	return s.Dir
}

// AngleSuffix names frames of an angular sweep after their angle, zero-padded
// to Width digits. The encoder picks frames up with a glob, which orders them
// lexicographically, so only ascending sweeps over non-negative angles fit.
type AngleSuffix struct {
	Dir    string
	Prefix string
	Ext    string
	Width  int
}

func (a AngleSuffix) width() int {
	if a.Width <= 0 {
		return DefaultAngleWidth
	}
	return a.Width
}

func (a AngleSuffix) Check(spec Spec) error {
	ang, ok := asAngular(spec)
	if !ok {
		return fmt.Errorf("%w: angle suffixes require an angular sweep; got %s", ErrNaming, spec.Kind())
	}
	if err := ang.Validate(); err != nil {
		return err
	}
	if ang.StepDegrees < 0 {
		return fmt.Errorf("%w: angle suffixes require an ascending sweep", ErrNaming)
	}
	if ang.StartDegrees < 0 {
		return fmt.Errorf("%w: angle suffixes require non-negative angles; got %d", ErrNaming, ang.StartDegrees)
	}
	last := ang.Degrees(ang.Len() - 1)
	if digits := len(strconv.Itoa(last)); digits > a.width() {
		return fmt.Errorf("%w: angle %d does not fit in %d digits", ErrNaming, last, a.width())
	}
	return nil
}

func (a AngleSuffix) Path(spec Spec, frame int) string {
	ang, _ := asAngular(spec)
	return filepath.Join(a.Dir, fmt.Sprintf("%s%0*d%s", a.Prefix, a.width(), ang.Degrees(frame), a.Ext))
}

func (a AngleSuffix) Input(spec Spec) EncoderInput {
	return EncoderInput{
		Dir:     a.Dir,
		Pattern: filepath.Join(escapeGlob(a.Dir), escapeGlob(a.Prefix)+"*"+escapeGlob(a.Ext)),
		Glob:    true,
		Frames:  spec.Len(),
	}
}

func (a AngleSuffix) OutputDir() string {
	return a.Dir
}

func asAngular(spec Spec) (Angular, bool) {
	switch s := spec.(type) {
	case Angular:
		return s, true
	case *Angular:
		return *s, true
	}
	return Angular{}, false
}

func escapeGlob(v string) string {
	var b strings.Builder
	for _, r := range v {
		if strings.ContainsRune(`*?[]\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
