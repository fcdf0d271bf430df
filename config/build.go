package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/xiaoyu2006/glens/encoder"
	"github.com/xiaoyu2006/glens/log"
	"github.com/xiaoyu2006/glens/orbit"
	"github.com/xiaoyu2006/glens/renderer"
	"github.com/xiaoyu2006/glens/scene"
	"github.com/xiaoyu2006/glens/sweep"
	"github.com/xiaoyu2006/glens/types"
)

// Level returns the log level requested by the definition.
func (d *Definition) Level() (log.Level, error) {
	if d.LogLevel == "" {
		return log.Notice, nil
	}
	return log.ParseLevel(d.LogLevel)
}

// Spec builds the sweep parameter range.
func (d *Definition) Spec() (sweep.Spec, error) {
	s := d.Sweep
	switch strings.ToLower(s.Kind) {
	case "linear":
		return sweep.Linear{Start: s.Start, End: s.End, Step: s.Step}, nil
	case "", "angular":
		start, err := wholeDegrees("sweep.start", s.Start)
		if err != nil {
			return nil, err
		}
		end, err := wholeDegrees("sweep.end", s.End)
		if err != nil {
			return nil, err
		}
		step, err := wholeDegrees("sweep.step", s.Step)
		if err != nil {
			return nil, err
		}
		return sweep.Angular{StartDegrees: start, EndDegrees: end, StepDegrees: step}, nil
	}
	return nil, fmt.Errorf("config: unknown sweep kind %q", s.Kind)
}

// Naming builds the frame naming scheme.
func (d *Definition) Naming() (sweep.Naming, error) {
	o := d.Output
	switch strings.ToLower(o.Naming) {
	case "", "sequential":
		return sweep.Sequential{Dir: o.Dir, Prefix: o.Prefix, Ext: o.Ext, First: o.First}, nil
	case "angle":
		return sweep.AngleSuffix{Dir: o.Dir, Prefix: o.Prefix, Ext: o.Ext, Width: o.Width}, nil
	}
	return nil, fmt.Errorf("config: unknown naming scheme %q", o.Naming)
}

// Serializer returns the argument serializer for the renderer dialect.
func (d *Definition) Serializer() (scene.Serializer, error) {
	dialect, err := scene.ParseDialect(d.Renderer.Dialect)
	if err != nil {
		return nil, err
	}
	return scene.NewSerializer(dialect)
}

// Template builds the scene template that every frame is derived from.
func (d *Definition) Template() (*scene.Template, error) {
	camera := scene.NewCamera(d.Camera.Focus)
	var err error
	if camera.LookFrom, err = vec("camera.lookFrom", d.Camera.LookFrom, camera.LookFrom); err != nil {
		return nil, err
	}
	if camera.LookAt, err = vec("camera.lookAt", d.Camera.LookAt, camera.LookAt); err != nil {
		return nil, err
	}
	if camera.Up, err = vec("camera.up", d.Camera.Up, camera.Up); err != nil {
		return nil, err
	}

	tpl := &scene.Template{
		Camera: camera,
		Integration: scene.Integration{
			DeltaT:     d.Integration.DeltaT,
			Iterations: d.Integration.Iterations,
		},
		Options: scene.Options{
			Width:       d.Options.Width,
			Height:      d.Options.Height,
			Gravitation: d.Options.Gravitation,
		},
	}

	switch len(d.Options.Boundary) {
	case 0:
	case 6:
		tpl.Options.Boundary = &scene.Boundary{
			Min: types.XYZ(d.Options.Boundary[0], d.Options.Boundary[1], d.Options.Boundary[2]),
			Max: types.XYZ(d.Options.Boundary[3], d.Options.Boundary[4], d.Options.Boundary[5]),
		}
	default:
		return nil, fmt.Errorf("config: options.boundary: expected 6 values; got %d", len(d.Options.Boundary))
	}

	for idx, bd := range d.Bodies {
		bt, err := bd.template(idx)
		if err != nil {
			return nil, err
		}
		tpl.Bodies = append(tpl.Bodies, bt)
	}

	for idx, sd := range d.Spheres {
		field := fmt.Sprintf("spheres[%d]", idx)
		pos, err := vec(field+".position", sd.Position, types.Vec3{})
		if err != nil {
			return nil, err
		}
		col, err := vec(field+".color", sd.Color, types.XYZ(1, 1, 1))
		if err != nil {
			return nil, err
		}
		tpl.Spheres = append(tpl.Spheres, scene.Sphere{Position: pos, Color: col, Radius: sd.Radius})
	}

	return tpl, nil
}

func (bd BodyDef) template(idx int) (scene.BodyTemplate, error) {
	field := fmt.Sprintf("bodies[%d]", idx)
	if bd.Name != "" {
		field = fmt.Sprintf("%s(%s)", field, bd.Name)
	}

	bt := scene.BodyTemplate{Mass: bd.Mass, DiskRadius: bd.DiskRadius}
	var err error
	if bt.Color, err = vec(field+".color", bd.Color, types.XYZ(1, 1, 1)); err != nil {
		return bt, err
	}
	if bt.DiskNormal, err = vec(field+".diskNormal", bd.DiskNormal, scene.DefaultDiskNormal); err != nil {
		return bt, err
	}

	switch {
	case bd.Orbit != nil && bd.Line != nil:
		return bt, fmt.Errorf("config: %s: orbit and line are mutually exclusive", field)
	case bd.Orbit != nil:
		center, err := vec(field+".orbit.center", bd.Orbit.Center, types.Vec3{})
		if err != nil {
			return bt, err
		}
		plane, err := orbit.ParsePlane(bd.Orbit.Plane)
		if err != nil {
			return bt, err
		}
		bt.Path = orbit.Orbit{
			Center: center,
			Radius: bd.Orbit.Radius,
			Phase:  orbit.Radians(bd.Orbit.Phase),
			Plane:  plane,
		}
	case bd.Line != nil:
		origin, err := vec(field+".line.origin", bd.Line.Origin, types.Vec3{})
		if err != nil {
			return bt, err
		}
		dir, err := vec(field+".line.direction", bd.Line.Direction, types.Vec3{})
		if err != nil {
			return bt, err
		}
		bt.Path = orbit.Line{Origin: origin, Direction: dir}
	default:
		pos, err := vec(field+".position", bd.Position, types.Vec3{})
		if err != nil {
			return bt, err
		}
		bt.Path = orbit.Static{At: pos}
	}
	return bt, nil
}

// Driver wires the sweep, naming scheme and scene template together.
func (d *Definition) Driver() (*sweep.Driver, error) {
	spec, err := d.Spec()
	if err != nil {
		return nil, err
	}
	naming, err := d.Naming()
	if err != nil {
		return nil, err
	}
	tpl, err := d.Template()
	if err != nil {
		return nil, err
	}
	return sweep.NewDriver(spec, naming, sweep.TemplateBuilder(tpl))
}

// RendererOptions returns the options for the external renderer.
func (d *Definition) RendererOptions() renderer.Options {
	return renderer.Options{
		Binary:    d.Renderer.Binary,
		ExtraArgs: append([]string(nil), d.Renderer.Args...),
		WorkDir:   d.Renderer.WorkDir,
	}
}

// EncoderOptions returns the options for the assembly step.
func (d *Definition) EncoderOptions() encoder.Options {
	return encoder.Options{
		Binary:    d.Encoder.Binary,
		FrameRate: d.Encoder.FrameRate,
		Codec:     d.Encoder.Codec,
		Bitrate:   d.Encoder.Bitrate,
		Output:    d.Encoder.Output,
		ExtraArgs: append([]string(nil), d.Encoder.Args...),
	}
}

func vec(field string, values []float64, def types.Vec3) (types.Vec3, error) {
	if len(values) == 0 {
		return def, nil
	}
	v, err := types.Vec3FromSlice(values)
	if err != nil {
		return v, fmt.Errorf("config: %s: %w", field, err)
	}
	return v, nil
}

func wholeDegrees(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("config: %s: angular sweeps take whole degrees; got %g", field, v)
	}
	if math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("config: %s: %g out of range", field, v)
	}
	return int(v), nil
}
