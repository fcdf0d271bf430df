// Package orbit computes body positions as pure functions of a sweep value.
//
// Nothing in this package keeps state between calls: asking for the position
// at the same value always yields the same vector, which is what allows any
// frame of a sweep to be reproduced from its index alone.
package orbit

import (
	"fmt"
	"math"
	"strings"

	"github.com/xiaoyu2006/glens/types"
)

// The Trajectory interface is implemented by all body motion models.
type Trajectory interface {
	// Get the body position for the given sweep value.
	Position(value float64) types.Vec3
}

// Plane selects the two axes an orbit is drawn on. The remaining axis keeps
// the center coordinate.
type Plane uint8

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	}
	return fmt.Sprintf("Plane(%d)", uint8(p))
}

// Parse a plane name. An empty name selects PlaneXY.
func ParsePlane(name string) (Plane, error) {
	switch strings.ToLower(name) {
	case "", "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}
	return PlaneXY, fmt.Errorf("orbit: unknown plane %q", name)
}

// Convert degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Orbit is a circular path of the given radius around Center. The sweep value
// is the orbit angle in radians and Phase is added to it.
type Orbit struct {
	Center types.Vec3
	Radius float64
	Phase  float64
	Plane  Plane
}

// Position returns Center + Radius*(cos(theta+Phase), sin(theta+Phase)) laid
// out on the orbit plane.
func (o Orbit) Position(theta float64) types.Vec3 {
	a := theta + o.Phase
	u := o.Radius * math.Cos(a)
	v := o.Radius * math.Sin(a)

	p := o.Center
	switch o.Plane {
	case PlaneXZ:
		p[0] += u
		p[2] += v
	case PlaneYZ:
		p[1] += u
		p[2] += v
	default:
		p[0] += u
		p[1] += v
	}
	return p
}

// Binary returns two orbits that share a center and radius and sit half a
// turn apart, starting at the given phase.
func Binary(center types.Vec3, radius, phase float64, plane Plane) (Orbit, Orbit) {
	return Orbit{Center: center, Radius: radius, Phase: phase, Plane: plane},
		Orbit{Center: center, Radius: radius, Phase: phase + math.Pi, Plane: plane}
}

// Line moves a body along Direction, scaled by the sweep value.
type Line struct {
	Origin    types.Vec3
	Direction types.Vec3
}

func (l Line) Position(value float64) types.Vec3 {
	return l.Origin.Add(l.Direction.Mul(value))
}

// Static keeps a body in place for the whole sweep.
type Static struct {
	At types.Vec3
}

func (s Static) Position(float64) types.Vec3 {
	return s.At
}
