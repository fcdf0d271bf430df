package scene

import (
	"fmt"

	"github.com/xiaoyu2006/glens/types"
)

// Default disk orientation used when a body does not specify one.
var DefaultDiskNormal = types.XYZ(0, 0, 1)

// Defines a gravitating body. Bodies with a zero disk radius bend light but
// are not visible.
type Body struct {
	Mass     float64
	Position types.Vec3

	// Accretion disk appearance.
	Color      types.Vec3
	DiskRadius float64
	DiskNormal types.Vec3
}

// Returns true if the body carries a visible disk.
func (b Body) HasDisk() bool {
	return b.DiskRadius > 0
}

func (b Body) validate(index int) error {
	field := func(name string) string { return fmt.Sprintf("bodies[%d].%s", index, name) }

	if err := checkFloat(field("mass"), b.Mass); err != nil {
		return err
	}
	if b.Mass <= 0 {
		return &FieldError{Field: field("mass"), Value: b.Mass, Err: ErrInvalidMass}
	}
	if err := checkVec(field("position"), b.Position); err != nil {
		return err
	}
	if err := checkVec(field("color"), b.Color); err != nil {
		return err
	}
	if err := checkFloat(field("disk-radius"), b.DiskRadius); err != nil {
		return err
	}
	if b.DiskRadius < 0 {
		return &FieldError{Field: field("disk-radius"), Value: b.DiskRadius, Err: ErrInvalidRadius}
	}
	if b.HasDisk() {
		for i, c := range b.Color {
			if c < 0 || c > 1 {
				return &FieldError{Field: fmt.Sprintf("%s[%d]", field("color"), i), Value: c, Err: ErrInvalidColor}
			}
		}
	}
	return checkVec(field("disk-normal"), b.DiskNormal)
}

// Defines a visible sphere. Spheres carry no mass and do not move.
type Sphere struct {
	Position types.Vec3
	Color    types.Vec3
	Radius   float64
}

func (s Sphere) validate(index int) error {
	field := func(name string) string { return fmt.Sprintf("spheres[%d].%s", index, name) }

	if err := checkVec(field("position"), s.Position); err != nil {
		return err
	}
	if err := checkVec(field("color"), s.Color); err != nil {
		return err
	}
	if err := checkFloat(field("radius"), s.Radius); err != nil {
		return err
	}
	if s.Radius < 0 {
		return &FieldError{Field: field("radius"), Value: s.Radius, Err: ErrInvalidRadius}
	}
	return nil
}
