package scene

import (
	"fmt"

	"github.com/xiaoyu2006/glens/types"
)

// Renderer defaults for settings that not every dialect can express.
const (
	DefaultFocus  = 80.0
	DefaultDeltaT = 0.005
)

// The camera type describes the renderer viewpoint.
type Camera struct {
	LookFrom types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Camera FOV in degrees.
	Focus float64
}

// Create a camera using the renderer's own defaults.
func NewCamera(focus float64) Camera {
	return Camera{
		LookFrom: types.XYZ(0, 0, 0),
		LookAt:   types.XYZ(0, 1, 0),
		Up:       types.XYZ(0, 0, 1),
		Focus:    focus,
	}
}

func (c Camera) String() string {
	return fmt.Sprintf("Camera from %v at %v up %v focus %g", c.LookFrom, c.LookAt, c.Up, c.Focus)
}

func (c Camera) validate() error {
	if err := checkVec("camera.look-from", c.LookFrom); err != nil {
		return err
	}
	if err := checkVec("camera.look-at", c.LookAt); err != nil {
		return err
	}
	if err := checkVec("camera.up", c.Up); err != nil {
		return err
	}
	return checkFloat("camera.focus", c.Focus)
}
