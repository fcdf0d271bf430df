package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiaoyu2006/glens/asset"
	"github.com/xiaoyu2006/glens/log"
	"github.com/xiaoyu2006/glens/orbit"
	"github.com/xiaoyu2006/glens/scene"
	"github.com/xiaoyu2006/glens/sweep"
	"github.com/xiaoyu2006/glens/types"
)

func writeDefinition(t *testing.T, name, payload string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(payload), 0644))
	return file
}

func TestLoad_YAMLDefaults(t *testing.T) {
	file := writeDefinition(t, "orbit.yaml", `
name: single
bodies:
  - mass: 0.3
    orbit:
      center: [0, 2, 0]
      radius: 1
`)

	def, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "single", def.Name)
	assert.Equal(t, "notice", def.LogLevel)
	assert.Equal(t, "./target/release/glens", def.Renderer.Binary)
	assert.Equal(t, "multi-body", def.Renderer.Dialect)
	assert.Equal(t, "output", def.Output.Dir)
	assert.Equal(t, ".ppm", def.Output.Ext)
	assert.True(t, def.Encoder.Enabled)
	assert.Equal(t, 15, def.Encoder.FrameRate)
	assert.Equal(t, "libx264", def.Encoder.Codec)
	assert.Equal(t, []float64{0, 1, 0}, def.Camera.LookAt)
	assert.Equal(t, 80.0, def.Camera.Focus)
	assert.Equal(t, 0.005, def.Integration.DeltaT)
	assert.Equal(t, 5000, def.Integration.Iterations)
	assert.Equal(t, "angular", def.Sweep.Kind)

	require.Len(t, def.Bodies, 1)
	require.NotNil(t, def.Bodies[0].Orbit)
	assert.Equal(t, []float64{0, 2, 0}, def.Bodies[0].Orbit.Center)

	drv, err := def.Driver()
	require.NoError(t, err)
	assert.Equal(t, 180, drv.Len())
}

func TestLoad_TOML(t *testing.T) {
	file := writeDefinition(t, "slide.toml", `
name = "toml-slide"
logLevel = "debug"

[renderer]
dialect = "shorthand"

[sweep]
kind = "linear"
start = 0
end = 1
step = 0.25

[[bodies]]
mass = 1
  [bodies.line]
  origin = [0, 2, 0]
  direction = [1, 0, 0]
`)

	def, err := Load(file)
	require.NoError(t, err)

	level, err := def.Level()
	require.NoError(t, err)
	assert.Equal(t, log.Debug, level)

	spec, err := def.Spec()
	require.NoError(t, err)
	assert.Equal(t, sweep.Linear{Start: 0, End: 1, Step: 0.25}, spec)
	assert.Equal(t, 5, spec.Len())

	ser, err := def.Serializer()
	require.NoError(t, err)
	assert.Equal(t, scene.ShorthandDialect, ser.Dialect())
}

func TestLoad_RemoteJSON(t *testing.T) {
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/defs/remote.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{
			"name": "remote",
			"output": { "dir": "frames", "naming": "angle", "prefix": "a_" },
			"encoder": { "enabled": false },
			"sweep": { "kind": "angular", "start": 0, "end": 90, "step": 30 },
			"spheres": [ { "position": [1, 2, 3], "radius": 0.5 } ]
		}`))
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	def, err := Load(server.URL + "/defs/remote.json")
	require.NoError(t, err)

	assert.False(t, def.Encoder.Enabled)

	naming, err := def.Naming()
	require.NoError(t, err)
	assert.Equal(t, sweep.AngleSuffix{Dir: "frames", Prefix: "a_", Ext: ".ppm"}, naming)

	drv, err := def.Driver()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("frames", "a_060.ppm"), drv.Path(2))

	tpl, err := def.Template()
	require.NoError(t, err)
	require.Len(t, tpl.Spheres, 1)
	assert.Equal(t, scene.Sphere{Position: types.XYZ(1, 2, 3), Color: types.XYZ(1, 1, 1), Radius: 0.5}, tpl.Spheres[0])
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	file := writeDefinition(t, "sweep.ini", "name = x")
	_, err = Load(file)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat), "got %v", err)

	file = writeDefinition(t, "broken.json", `{"name": `)
	_, err = Load(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading definition")
}

func TestRead_Stream(t *testing.T) {
	res := asset.NewResourceFromStream("inline", strings.NewReader("sweep:\n  kind: linear\n  start: 1\n  end: 2\n  step: 0.5\n"))
	def, err := Read(res)
	require.NoError(t, err)

	// 1.5, 2.0 and 2.5: the value advances before each frame
	spec, err := def.Spec()
	require.NoError(t, err)
	assert.Equal(t, 3, spec.Len())
}

func TestDefinitionErrors(t *testing.T) {
	type spec struct {
		mutate func(*Definition)
		call   func(*Definition) error
		expErr string
	}

	template := func(d *Definition) error { _, err := d.Template(); return err }
	sweepSpec := func(d *Definition) error { _, err := d.Spec(); return err }
	naming := func(d *Definition) error { _, err := d.Naming(); return err }
	serializer := func(d *Definition) error { _, err := d.Serializer(); return err }

	specs := []spec{
		{
			func(d *Definition) { d.Sweep = SweepDef{Kind: "angular", Start: 0, End: 10, Step: 2.5} },
			sweepSpec,
			"config: sweep.step: angular sweeps take whole degrees; got 2.5",
		},
		{
			func(d *Definition) { d.Sweep.Kind = "spiral" },
			sweepSpec,
			`config: unknown sweep kind "spiral"`,
		},
		{
			func(d *Definition) { d.Output.Naming = "random" },
			naming,
			`config: unknown naming scheme "random"`,
		},
		{
			func(d *Definition) { d.Renderer.Dialect = "xml" },
			serializer,
			`scene: unknown argument dialect "xml"`,
		},
		{
			func(d *Definition) { d.Options.Boundary = []float64{1, 2, 3} },
			template,
			"config: options.boundary: expected 6 values; got 3",
		},
		{
			func(d *Definition) { d.Bodies[0].Line = &LineDef{} },
			template,
			"config: bodies[0](bh1): orbit and line are mutually exclusive",
		},
		{
			func(d *Definition) { d.Bodies[1].Color = []float64{1, 0} },
			template,
			"config: bodies[1](bh2).color: types: expected 3 vector components; got 2",
		},
		{
			func(d *Definition) { d.Bodies[1].Orbit.Plane = "uv" },
			template,
			`orbit: unknown plane "uv"`,
		},
	}

	for specIndex, s := range specs {
		def, err := Preset("binary")
		if err != nil {
			t.Fatal(err)
		}
		s.mutate(def)
		err = s.call(def)
		if err == nil || err.Error() != s.expErr {
			t.Fatalf("[spec %d] expected error %q; got %v", specIndex, s.expErr, err)
		}
	}
}

func TestBoundaryOption(t *testing.T) {
	def, err := Preset("binary")
	require.NoError(t, err)
	def.Options.Boundary = []float64{-10, -10, -10, 10, 10, 10}

	tpl, err := def.Template()
	require.NoError(t, err)
	require.NotNil(t, tpl.Options.Boundary)
	assert.Equal(t, types.XYZ(-10, -10, -10), tpl.Options.Boundary.Min)
	assert.Equal(t, types.XYZ(10, 10, 10), tpl.Options.Boundary.Max)
}

func TestSlidePreset(t *testing.T) {
	def, err := Preset("slide")
	require.NoError(t, err)

	drv, err := def.Driver()
	require.NoError(t, err)
	require.Equal(t, 101, drv.Len())

	ser, err := def.Serializer()
	require.NoError(t, err)

	_, cfg, ok := drv.Next()
	require.True(t, ok)
	args, err := ser.Serialize(&cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--output-file=" + filepath.Join("output", "1.ppm"),
		"-v=0.0000,6.0000,0.0000,2.0000,1.0000,0.8000,0.6000;4.0000,8.0000,0.0000,0.6000,0.6000,0.9000,1.0000",
		"-m=-1.9600,2.0000,0.0000,1.0000",
		"-i=2000",
	}, args)

	assert.Equal(t, sweep.EncoderInput{
		Dir:         "output",
		Pattern:     filepath.Join("output", "%d.ppm"),
		StartNumber: 1,
		Frames:      101,
	}, drv.Input())
}

func TestBinaryPreset(t *testing.T) {
	def, err := Preset("binary")
	require.NoError(t, err)

	drv, err := def.Driver()
	require.NoError(t, err)
	require.Equal(t, 180, drv.Len())

	// 90 degrees
	_, cfg, err := drv.Frame(45)
	require.NoError(t, err)
	require.Len(t, cfg.Bodies, 2)
	assert.True(t, cfg.Bodies[0].Position.ApproxEqual(types.XYZ(0, 2.6, 0), 1e-9), "got %v", cfg.Bodies[0].Position)
	assert.True(t, cfg.Bodies[1].Position.ApproxEqual(types.XYZ(0, 1.4, 0), 1e-9), "got %v", cfg.Bodies[1].Position)
	assert.Equal(t, filepath.Join("output2", "45.ppm"), cfg.OutputPath)

	ser, err := def.Serializer()
	require.NoError(t, err)
	_, cfg, err = drv.Frame(0)
	require.NoError(t, err)
	args, err := ser.Serialize(&cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--output-file=" + filepath.Join("output2", "0.ppm"),
		"--look-from=0.0000,0.0000,-0.0500",
		"--look-at=0.0000,2.0000,0.0000",
		"--up=0.0000,0.0000,1.0000",
		"--focus=60.0000",
		"--delta-t=0.0100",
		"--iterations=2000",
		"--mass-points=0.6000,2.0000,0.0000,0.2000;-0.6000,2.0000,0.0000,0.5000",
		"--disks=0.6000,2.0000,0.0000,0.9600,0.6400,0.2500,0.2000,0.0000,0.0000,1.0000;-0.6000,2.0000,0.0000,0.3300,0.2600,0.9600,0.4000,0.0000,0.0000,1.0000",
		"--spheres=",
	}, args)
}

func TestBinaryPresetMatchesBinaryOrbit(t *testing.T) {
	def, err := Preset("binary")
	require.NoError(t, err)
	tpl, err := def.Template()
	require.NoError(t, err)

	o1, o2 := orbit.Binary(types.XYZ(0, 2, 0), 0.6, 0, orbit.PlaneXY)
	for deg := 0; deg < 360; deg += 2 {
		theta := orbit.Radians(float64(deg))
		cfg := tpl.Build(theta)
		assert.True(t, cfg.Bodies[0].Position.ApproxEqual(o1.Position(theta), 1e-12))
		assert.True(t, cfg.Bodies[1].Position.ApproxEqual(o2.Position(theta), 1e-12))
	}
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"binary", "slide"}, PresetNames())
	for _, name := range PresetNames() {
		assert.NotEmpty(t, PresetDescription(name))
	}

	_, err := Preset("trinary")
	assert.True(t, errors.Is(err, ErrUnknownPreset))

	a, _ := Preset("binary")
	a.Bodies[0].Mass = 42
	b, _ := Preset("binary")
	assert.Equal(t, 0.2, b.Bodies[0].Mass)
}
