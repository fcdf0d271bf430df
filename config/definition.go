// Package config loads sweep definitions.
//
// A definition describes a complete sweep: the scene template and how bodies
// move, the swept parameter, the renderer argument dialect, how frames are
// named and how they are assembled into a video. Definitions are read from
// yaml, json or toml files, local or remote, or taken from the built-in
// presets.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/xiaoyu2006/glens/asset"
	"github.com/xiaoyu2006/glens/log"
	"github.com/xiaoyu2006/glens/scene"
)

var logger = log.New("config")

var (
	ErrUnsupportedFormat = errors.New("config: unsupported definition format")
	ErrUnknownPreset     = errors.New("config: unknown preset")
)

type RendererDef struct {
	Binary  string   `mapstructure:"binary"`
	Dialect string   `mapstructure:"dialect"`
	Args    []string `mapstructure:"args"`
	WorkDir string   `mapstructure:"workDir"`
}

type OutputDef struct {
	Dir string `mapstructure:"dir"`

	// "sequential" or "angle".
	Naming string `mapstructure:"naming"`
	Prefix string `mapstructure:"prefix"`
	Ext    string `mapstructure:"ext"`

	// First frame number for sequential naming.
	First int `mapstructure:"first"`

	// Zero-padded digits for angle naming.
	Width int `mapstructure:"width"`
}

type EncoderDef struct {
	Enabled   bool     `mapstructure:"enabled"`
	Binary    string   `mapstructure:"binary"`
	FrameRate int      `mapstructure:"frameRate"`
	Codec     string   `mapstructure:"codec"`
	Bitrate   string   `mapstructure:"bitrate"`
	Output    string   `mapstructure:"output"`
	Args      []string `mapstructure:"args"`
}

type CameraDef struct {
	LookFrom []float64 `mapstructure:"lookFrom"`
	LookAt   []float64 `mapstructure:"lookAt"`
	Up       []float64 `mapstructure:"up"`
	Focus    float64   `mapstructure:"focus"`
}

type IntegrationDef struct {
	DeltaT     float64 `mapstructure:"deltaT"`
	Iterations int     `mapstructure:"iterations"`
}

type OptionsDef struct {
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	Gravitation float64 `mapstructure:"gravitation"`

	// min x,y,z followed by max x,y,z.
	Boundary []float64 `mapstructure:"boundary"`
}

type SweepDef struct {
	// "linear" or "angular". Angular values are whole degrees.
	Kind  string  `mapstructure:"kind"`
	Start float64 `mapstructure:"start"`
	End   float64 `mapstructure:"end"`
	Step  float64 `mapstructure:"step"`
}

// An OrbitDef moves a body on a circle; the sweep value is the angle.
type OrbitDef struct {
	Center []float64 `mapstructure:"center"`
	Radius float64   `mapstructure:"radius"`
	Phase  float64   `mapstructure:"phase"`
	Plane  string    `mapstructure:"plane"`
}

// A LineDef moves a body along origin + value * direction.
type LineDef struct {
	Origin    []float64 `mapstructure:"origin"`
	Direction []float64 `mapstructure:"direction"`
}

// A body follows at most one of Orbit or Line. Without either it stays at
// Position.
type BodyDef struct {
	Name       string    `mapstructure:"name"`
	Mass       float64   `mapstructure:"mass"`
	Color      []float64 `mapstructure:"color"`
	DiskRadius float64   `mapstructure:"diskRadius"`
	DiskNormal []float64 `mapstructure:"diskNormal"`
	Position   []float64 `mapstructure:"position"`
	Orbit      *OrbitDef `mapstructure:"orbit"`
	Line       *LineDef  `mapstructure:"line"`
}

type SphereDef struct {
	Position []float64 `mapstructure:"position"`
	Color    []float64 `mapstructure:"color"`
	Radius   float64   `mapstructure:"radius"`
}

// Definition is the decoded form of a sweep definition file.
type Definition struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"logLevel"`

	Renderer    RendererDef    `mapstructure:"renderer"`
	Output      OutputDef      `mapstructure:"output"`
	Encoder     EncoderDef     `mapstructure:"encoder"`
	Camera      CameraDef      `mapstructure:"camera"`
	Integration IntegrationDef `mapstructure:"integration"`
	Options     OptionsDef     `mapstructure:"options"`
	Sweep       SweepDef       `mapstructure:"sweep"`

	Bodies  []BodyDef   `mapstructure:"bodies"`
	Spheres []SphereDef `mapstructure:"spheres"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "sweep")
	v.SetDefault("logLevel", "notice")

	v.SetDefault("renderer.binary", "./target/release/glens")
	v.SetDefault("renderer.dialect", "multi-body")

	v.SetDefault("output.dir", "output")
	v.SetDefault("output.naming", "sequential")
	v.SetDefault("output.ext", ".ppm")
	v.SetDefault("output.first", 0)

	v.SetDefault("encoder.enabled", true)
	v.SetDefault("encoder.binary", "ffmpeg")
	v.SetDefault("encoder.frameRate", 15)
	v.SetDefault("encoder.codec", "libx264")
	v.SetDefault("encoder.output", "movie.mp4")

	v.SetDefault("camera.lookFrom", []float64{0, 0, 0})
	v.SetDefault("camera.lookAt", []float64{0, 1, 0})
	v.SetDefault("camera.up", []float64{0, 0, 1})
	v.SetDefault("camera.focus", scene.DefaultFocus)

	v.SetDefault("integration.deltaT", scene.DefaultDeltaT)
	v.SetDefault("integration.iterations", 5000)

	v.SetDefault("sweep.kind", "angular")
	v.SetDefault("sweep.start", 0)
	v.SetDefault("sweep.end", 360)
	v.SetDefault("sweep.step", 2)
}

// Load opens a definition from a local path or an http(s) URL.
func Load(location string) (*Definition, error) {
	res, err := asset.NewResource(location)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return Read(res)
}

// Read decodes a definition. The format follows the resource extension and
// defaults to yaml when there is none.
func Read(res *asset.Resource) (*Definition, error) {
	format, err := configType(res.Ext())
	if err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigType(format)
	if err := v.ReadConfig(res); err != nil {
		return nil, fmt.Errorf("config: error reading definition %s: %w", res.Path(), err)
	}

	var def Definition
	if err := v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("config: error decoding definition %s: %w", res.Path(), err)
	}

	logger.Infof("loaded definition %q from %s", def.Name, res.Path())
	return &def, nil
}

func configType(ext string) (string, error) {
	switch strings.ToLower(ext) {
	case "", "yaml", "yml":
		return "yaml", nil
	case "json":
		return "json", nil
	case "toml":
		return "toml", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
