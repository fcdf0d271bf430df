package sweep

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xiaoyu2006/glens/orbit"
	"github.com/xiaoyu2006/glens/scene"
	"github.com/xiaoyu2006/glens/types"
)

func binaryTemplate() *scene.Template {
	a, b := orbit.Binary(types.XYZ(0, 2, 0), 0.6, 0, orbit.PlaneXY)
	return &scene.Template{
		Camera:      scene.Camera{LookFrom: types.XYZ(0, 0, -0.05), LookAt: types.XYZ(0, 2, 0), Up: types.XYZ(0, 0, 1), Focus: 60},
		Integration: scene.Integration{DeltaT: 0.01, Iterations: 2000},
		Bodies: []scene.BodyTemplate{
			{Mass: 0.2, Color: types.XYZ(0.96, 0.64, 0.25), DiskRadius: 0.2, Path: a},
			{Mass: 0.5, Color: types.XYZ(0.33, 0.26, 0.96), DiskRadius: 0.4, Path: b},
		},
	}
}

func TestDriverRunsEveryFrameInOrder(t *testing.T) {
	spec := Angular{0, 360, 2}
	d, err := NewDriver(spec, Sequential{Dir: "output2", Ext: ".ppm"}, TemplateBuilder(binaryTemplate()))
	if err != nil {
		t.Fatal(err)
	}

	if d.State() != NotStarted {
		t.Fatalf("expected state %s; got %s", NotStarted, d.State())
	}

	seen := make(map[string]int)
	count := 0
	for {
		frame, cfg, ok := d.Next()
		if !ok {
			break
		}
		if frame.Index != count {
			t.Fatalf("expected frame %d; got %d", count, frame.Index)
		}
		if count < spec.Len()-1 && d.State() != Running {
			t.Fatalf("expected state %s at frame %d; got %s", Running, count, d.State())
		}
		if prev, dup := seen[cfg.OutputPath]; dup {
			t.Fatalf("frames %d and %d share output path %s", prev, count, cfg.OutputPath)
		}
		seen[cfg.OutputPath] = count

		// Binary bodies stay antipodal in every frame.
		sum := cfg.Bodies[0].Position.Add(cfg.Bodies[1].Position)
		if !sum.ApproxEqual(types.XYZ(0, 4, 0), 1e-9) {
			t.Fatalf("[frame %d] expected antipodal bodies; got %v and %v", count, cfg.Bodies[0].Position, cfg.Bodies[1].Position)
		}
		count++
	}

	if count != 180 {
		t.Fatalf("expected 180 frames; got %d", count)
	}
	if d.State() != Completed {
		t.Fatalf("expected state %s; got %s", Completed, d.State())
	}
	if _, _, ok := d.Next(); ok {
		t.Fatal("expected completed driver to yield no more frames")
	}
	if got := d.Path(0); got != filepath.Join("output2", "0.ppm") {
		t.Fatalf("expected first path output2/0.ppm; got %s", got)
	}
}

func TestDriverFrameIsReproducible(t *testing.T) {
	specs := []Spec{
		Angular{0, 360, 2},
		Linear{-2, 2, 0.04},
	}

	for index, spec := range specs {
		d, err := NewDriver(spec, Sequential{Dir: "out", Ext: ".ppm", First: 1}, TemplateBuilder(binaryTemplate()))
		if err != nil {
			t.Fatal(err)
		}
		ser, _ := scene.NewSerializer(scene.MultiBodyDialect)

		for {
			frame, cfg, ok := d.Next()
			if !ok {
				break
			}
			_, isolated, err := d.Frame(frame.Index)
			if err != nil {
				t.Fatal(err)
			}
			runArgs, err := ser.Serialize(&cfg)
			if err != nil {
				t.Fatal(err)
			}
			isolatedArgs, err := ser.Serialize(&isolated)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(runArgs, isolatedArgs) {
				t.Fatalf("[spec %d frame %d] expected isolated frame args to match full run:\n%v\n%v", index, frame.Index, runArgs, isolatedArgs)
			}
		}
	}
}

func TestDriverReset(t *testing.T) {
	d, err := NewDriver(Linear{0, 1, 0.5}, Sequential{Dir: "out"}, TemplateBuilder(binaryTemplate()))
	if err != nil {
		t.Fatal(err)
	}
	for _, _, ok := d.Next(); ok; _, _, ok = d.Next() {
	}
	d.Reset()

	if d.State() != NotStarted {
		t.Fatalf("expected state %s after reset; got %s", NotStarted, d.State())
	}
	frame, _, ok := d.Next()
	if !ok || frame.Index != 0 || frame.Value != 0.5 {
		t.Fatalf("expected reset driver to start from frame 0 at 0.5; got %+v", frame)
	}
}

func TestDriverRejectsInvalidConfiguration(t *testing.T) {
	build := TemplateBuilder(binaryTemplate())

	type spec struct {
		sweep  Spec
		naming Naming
		expErr error
	}
	specs := []spec{
		{Linear{0, 1, 0}, Sequential{}, ErrZeroStep},
		{Angular{0, 0, 2}, Sequential{}, ErrEmpty},
		{Linear{0, 1, 0.1}, AngleSuffix{}, ErrNaming},
		{Angular{-10, 10, 2}, AngleSuffix{}, ErrNaming},
		{Angular{360, 0, -2}, AngleSuffix{}, ErrNaming},
		{Angular{0, 10000, 2}, AngleSuffix{Width: 3}, ErrNaming},
		{Linear{0, 1, 0.1}, Sequential{First: -1}, ErrNaming},
	}

	for index, s := range specs {
		if _, err := NewDriver(s.sweep, s.naming, build); !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}

	if _, err := NewDriver(Linear{0, 1, 0.1}, Sequential{}, nil); err == nil {
		t.Fatal("expected an error for a missing build function")
	}
}

func TestDriverFrameOutOfRange(t *testing.T) {
	d, _ := NewDriver(Angular{0, 10, 5}, Sequential{}, TemplateBuilder(binaryTemplate()))
	for _, index := range []int{-1, 2} {
		if _, _, err := d.Frame(index); !errors.Is(err, ErrFrameRange) {
			t.Fatalf("expected error %v for frame %d; got %v", ErrFrameRange, index, err)
		}
	}
}

func TestDriverFrames(t *testing.T) {
	d, _ := NewDriver(Linear{-2, 2, 0.04}, Sequential{Dir: "output", Ext: ".ppm", First: 1}, TemplateBuilder(binaryTemplate()))

	frames := d.Frames()
	if len(frames) != 101 {
		t.Fatalf("expected 101 frames; got %d", len(frames))
	}
	if frames[0].Label != "-1.9600" {
		t.Fatalf("expected first label -1.9600; got %s", frames[0].Label)
	}
	if got := d.Path(0); got != filepath.Join("output", "1.ppm") {
		t.Fatalf("expected first path output/1.ppm; got %s", got)
	}
	if got := d.Path(100); got != filepath.Join("output", "101.ppm") {
		t.Fatalf("expected last path output/101.ppm; got %s", got)
	}
	if d.State() != NotStarted {
		t.Fatalf("expected listing frames to leave the driver untouched; got %s", d.State())
	}
}
