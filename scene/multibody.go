package scene

import (
	"strconv"
)

type multiBodySerializer struct{}

func (multiBodySerializer) Dialect() Dialect {
	return MultiBodyDialect
}

// Serialize emits settings in a fixed order. The optional renderer options
// are emitted only when set; they are constant for a sweep so the argument
// count does not change between frames.
func (multiBodySerializer) Serialize(cfg *Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	args := []string{
		setting("--output-file", cfg.OutputPath),
		setting("--look-from", formatVec(cfg.Camera.LookFrom)),
		setting("--look-at", formatVec(cfg.Camera.LookAt)),
		setting("--up", formatVec(cfg.Camera.Up)),
		setting("--focus", FormatFloat(cfg.Camera.Focus)),
		setting("--delta-t", FormatFloat(cfg.Integration.DeltaT)),
		setting("--iterations", strconv.Itoa(cfg.Integration.Iterations)),
	}

	opts := cfg.Options
	if opts.Width > 0 {
		args = append(args, setting("--width", strconv.Itoa(opts.Width)))
	}
	if opts.Height > 0 {
		args = append(args, setting("--height", strconv.Itoa(opts.Height)))
	}
	if opts.Gravitation != 0 {
		args = append(args, setting("--gravitation", FormatFloat(opts.Gravitation)))
	}
	if b := opts.Boundary; b != nil {
		args = append(args, setting("--boundary", formatVec(b.Min)+","+formatVec(b.Max)))
	}

	disks := make([]string, 0, cfg.DiskCount())
	for _, b := range cfg.Bodies {
		if !b.HasDisk() {
			continue
		}
		disks = append(disks,
			formatVec(b.Position)+","+formatVec(b.Color)+","+FormatFloat(b.DiskRadius)+","+formatVec(b.DiskNormal),
		)
	}

	return append(args,
		setting("--mass-points", massPoints(cfg.Bodies)),
		setting("--disks", joinItems(disks)),
		setting("--spheres", spheres(cfg.Spheres)),
	), nil
}
