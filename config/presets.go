package config

import (
	"fmt"
	"sort"

	"github.com/xiaoyu2006/glens/scene"
)

type preset struct {
	description string
	build       func() *Definition
}

var presets = map[string]preset{
	"slide": {
		description: "a unit mass slides along x past two visible spheres (shorthand dialect)",
		build:       slidePreset,
	},
	"binary": {
		description: "two black holes with accretion disks orbit (0,2,0) in the xy plane",
		build:       binaryPreset,
	},
}

// PresetNames lists the built-in presets in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetDescription returns a one-line summary of a preset.
func PresetDescription(name string) string {
	return presets[name].description
}

// Preset returns a fresh copy of a built-in definition.
func Preset(name string) (*Definition, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	return p.build(), nil
}

func slidePreset() *Definition {
	return &Definition{
		Name:     "slide",
		LogLevel: "notice",
		Renderer: RendererDef{
			Binary:  "./target/release/glens",
			Dialect: "shorthand",
		},
		Output: OutputDef{
			Dir:    "output",
			Naming: "sequential",
			Ext:    ".ppm",
			First:  1,
		},
		Encoder: EncoderDef{
			Enabled:   true,
			Binary:    "ffmpeg",
			FrameRate: 10,
			Codec:     "mpeg4",
			Output:    "movie.mp4",
		},
		Camera: CameraDef{Focus: scene.DefaultFocus},
		Integration: IntegrationDef{
			DeltaT:     scene.DefaultDeltaT,
			Iterations: 2000,
		},
		Sweep: SweepDef{Kind: "linear", Start: -2, End: 2, Step: 0.04},
		Bodies: []BodyDef{
			{
				Name: "slider",
				Mass: 1,
				Line: &LineDef{Origin: []float64{0, 2, 0}, Direction: []float64{1, 0, 0}},
			},
		},
		Spheres: []SphereDef{
			{Position: []float64{0, 6, 0}, Color: []float64{2, 1, 0.8}, Radius: 0.6},
			{Position: []float64{4, 8, 0}, Color: []float64{0.6, 0.6, 0.9}, Radius: 1},
		},
	}
}

func binaryPreset() *Definition {
	center := []float64{0, 2, 0}
	return &Definition{
		Name:     "binary",
		LogLevel: "notice",
		Renderer: RendererDef{
			Binary:  "./target/release/glens",
			Dialect: "multi-body",
		},
		Output: OutputDef{
			Dir:    "output2",
			Naming: "sequential",
			Ext:    ".ppm",
		},
		Encoder: EncoderDef{
			Enabled:   true,
			Binary:    "ffmpeg",
			FrameRate: 15,
			Codec:     "libx264",
			Bitrate:   "5000k",
			Output:    "movie.mp4",
		},
		Camera: CameraDef{
			LookFrom: []float64{0, 0, -0.05},
			LookAt:   []float64{0, 2, 0},
			Up:       []float64{0, 0, 1},
			Focus:    60,
		},
		Integration: IntegrationDef{
			DeltaT:     0.01,
			Iterations: 2000,
		},
		Sweep: SweepDef{Kind: "angular", Start: 0, End: 360, Step: 2},
		Bodies: []BodyDef{
			{
				Name:       "bh1",
				Mass:       0.2,
				Color:      []float64{0.96, 0.64, 0.25},
				DiskRadius: 0.2,
				Orbit:      &OrbitDef{Center: center, Radius: 0.6, Phase: 0, Plane: "xy"},
			},
			{
				Name:       "bh2",
				Mass:       0.5,
				Color:      []float64{0.33, 0.26, 0.96},
				DiskRadius: 0.4,
				Orbit:      &OrbitDef{Center: center, Radius: 0.6, Phase: 180, Plane: "xy"},
			},
		},
	}
}
