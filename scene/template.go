package scene

import (
	"github.com/xiaoyu2006/glens/orbit"
	"github.com/xiaoyu2006/glens/types"
)

// BodyTemplate holds the parts of a body that stay fixed for a sweep. The
// position is derived from Path for every frame.
type BodyTemplate struct {
	Mass       float64
	Color      types.Vec3
	DiskRadius float64
	DiskNormal types.Vec3

	// Body motion. A nil path keeps the body at the origin.
	Path orbit.Trajectory
}

// At returns a body snapshot for the given sweep value.
func (bt BodyTemplate) At(value float64) Body {
	b := Body{
		Mass:       bt.Mass,
		Color:      bt.Color,
		DiskRadius: bt.DiskRadius,
		DiskNormal: bt.DiskNormal,
	}
	if b.DiskNormal == (types.Vec3{}) {
		b.DiskNormal = DefaultDiskNormal
	}
	if bt.Path != nil {
		b.Position = bt.Path.Position(value)
	}
	return b
}

// Template describes a whole sweep. Build derives each frame from it.
type Template struct {
	Camera      Camera
	Integration Integration
	Options     Options

	Bodies  []BodyTemplate
	Spheres []Sphere
}

// Build a fresh frame config for the given sweep value. The output path is
// left empty; the sweep driver assigns it.
func (t *Template) Build(value float64) Config {
	cfg := Config{
		Camera:      t.Camera,
		Integration: t.Integration,
		Options:     t.Options,
		Bodies:      make([]Body, len(t.Bodies)),
		Spheres:     make([]Sphere, len(t.Spheres)),
	}
	if t.Options.Boundary != nil {
		boundary := *t.Options.Boundary
		cfg.Options.Boundary = &boundary
	}
	for idx, bt := range t.Bodies {
		cfg.Bodies[idx] = bt.At(value)
	}
	copy(cfg.Spheres, t.Spheres)
	return cfg
}
