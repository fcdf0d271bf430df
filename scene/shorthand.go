package scene

import (
	"fmt"
	"strconv"

	"github.com/xiaoyu2006/glens/types"
)

// The shorthand dialect only knows about visible spheres, mass points and
// the iteration count. Any other setting must match the renderer default,
// otherwise the config is rejected with ErrDialectUnsupported.
type shorthandSerializer struct{}

func (shorthandSerializer) Dialect() Dialect {
	return ShorthandDialect
}

func (shorthandSerializer) Serialize(cfg *Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := shorthandDefaults(cfg); err != nil {
		return nil, err
	}
	for idx, b := range cfg.Bodies {
		if b.HasDisk() {
			return nil, unsupported(fmt.Sprintf("bodies[%d].disk-radius", idx), b.DiskRadius)
		}
	}

	return []string{
		setting("--output-file", cfg.OutputPath),
		setting("-v", spheres(cfg.Spheres)),
		setting("-m", massPoints(cfg.Bodies)),
		setting("-i", strconv.Itoa(cfg.Integration.Iterations)),
	}, nil
}

func shorthandDefaults(cfg *Config) error {
	def := NewCamera(DefaultFocus)
	if err := sameVec("camera.look-from", cfg.Camera.LookFrom, def.LookFrom); err != nil {
		return err
	}
	if err := sameVec("camera.look-at", cfg.Camera.LookAt, def.LookAt); err != nil {
		return err
	}
	if err := sameVec("camera.up", cfg.Camera.Up, def.Up); err != nil {
		return err
	}
	if cfg.Camera.Focus != def.Focus {
		return unsupported("camera.focus", cfg.Camera.Focus)
	}
	if cfg.Integration.DeltaT != DefaultDeltaT {
		return unsupported("integration.delta-t", cfg.Integration.DeltaT)
	}

	opts := cfg.Options
	switch {
	case opts.Width != 0:
		return unsupported("options.width", float64(opts.Width))
	case opts.Height != 0:
		return unsupported("options.height", float64(opts.Height))
	case opts.Gravitation != 0:
		return unsupported("options.gravitation", opts.Gravitation)
	case opts.Boundary != nil:
		return unsupported("options.boundary.min[0]", opts.Boundary.Min[0])
	}
	return nil
}

func sameVec(field string, got, want types.Vec3) error {
	for i := range got {
		if got[i] != want[i] {
			return unsupported(fmt.Sprintf("%s[%d]", field, i), got[i])
		}
	}
	return nil
}

func unsupported(field string, value float64) error {
	return &FieldError{Field: field, Value: value, Err: ErrDialectUnsupported}
}
