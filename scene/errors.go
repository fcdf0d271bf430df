package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/xiaoyu2006/glens/types"
)

var (
	ErrNonFinite          = errors.New("scene: non-finite value")
	ErrInvalidMass        = errors.New("scene: mass must be positive")
	ErrInvalidRadius      = errors.New("scene: radius must not be negative")
	ErrInvalidColor       = errors.New("scene: disk color components must lie in [0, 1]")
	ErrInvalidIterations  = errors.New("scene: iteration count must be positive")
	ErrNoOutputPath       = errors.New("scene: no output path defined")
	ErrDialectUnsupported = errors.New("scene: setting not supported by argument dialect")
)

// FieldError reports the scene field that failed validation.
type FieldError struct {
	Field string
	Value float64
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s = %v", e.Err.Error(), e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func checkFloat(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &FieldError{Field: field, Value: v, Err: ErrNonFinite}
	}
	return nil
}

func checkVec(field string, v types.Vec3) error {
	for i, c := range v {
		if err := checkFloat(fmt.Sprintf("%s[%d]", field, i), c); err != nil {
			return err
		}
	}
	return nil
}
