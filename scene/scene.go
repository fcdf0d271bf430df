package scene

import "github.com/xiaoyu2006/glens/types"

// Integration controls the renderer's ray marching.
type Integration struct {
	DeltaT     float64
	Iterations int
}

// Boundary of the simulation volume given as two opposite corners.
type Boundary struct {
	Min types.Vec3
	Max types.Vec3
}

// Options are renderer-wide settings. Zero values select the renderer
// defaults and are not emitted.
type Options struct {
	Width       int
	Height      int
	Gravitation float64
	Boundary    *Boundary
}

// Config is the complete description of a single frame.
type Config struct {
	Camera      Camera
	Integration Integration
	Options     Options

	// Serialization order follows slice order.
	Bodies  []Body
	Spheres []Sphere

	OutputPath string
}

// Validate checks every numeric field of the frame.
func (c *Config) Validate() error {
	if c.OutputPath == "" {
		return ErrNoOutputPath
	}
	if err := c.Camera.validate(); err != nil {
		return err
	}
	if err := checkFloat("integration.delta-t", c.Integration.DeltaT); err != nil {
		return err
	}
	if c.Integration.Iterations <= 0 {
		return &FieldError{Field: "integration.iterations", Value: float64(c.Integration.Iterations), Err: ErrInvalidIterations}
	}
	if err := checkFloat("options.gravitation", c.Options.Gravitation); err != nil {
		return err
	}
	if b := c.Options.Boundary; b != nil {
		if err := checkVec("options.boundary.min", b.Min); err != nil {
			return err
		}
		if err := checkVec("options.boundary.max", b.Max); err != nil {
			return err
		}
	}
	for idx, body := range c.Bodies {
		if err := body.validate(idx); err != nil {
			return err
		}
	}
	for idx, sphere := range c.Spheres {
		if err := sphere.validate(idx); err != nil {
			return err
		}
	}
	return nil
}

// Count bodies that carry a visible disk.
func (c *Config) DiskCount() int {
	count := 0
	for _, b := range c.Bodies {
		if b.HasDisk() {
			count++
		}
	}
	return count
}
