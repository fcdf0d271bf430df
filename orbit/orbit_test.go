package orbit

import (
	"math"
	"testing"

	"github.com/xiaoyu2006/glens/types"
)

const eps = 1e-9

func TestBinaryIsAntipodal(t *testing.T) {
	centers := []types.Vec3{
		types.XYZ(0, 2, 0),
		types.XYZ(-3.5, 0.25, 7),
	}
	planes := []Plane{PlaneXY, PlaneXZ, PlaneYZ}

	for _, center := range centers {
		for _, plane := range planes {
			a, b := Binary(center, 0.6, 0, plane)
			for deg := 0; deg < 360; deg++ {
				theta := Radians(float64(deg))
				sum := a.Position(theta).Add(b.Position(theta))
				if !sum.ApproxEqual(center.Mul(2), eps) {
					t.Fatalf("[center %v plane %s deg %d] expected positions to sum to %v; got %v", center, plane, deg, center.Mul(2), sum)
				}
			}
		}
	}
}

func TestDegenerateOrbit(t *testing.T) {
	center := types.XYZ(1, -2, 3)
	o := Orbit{Center: center, Radius: 0, Phase: 1.234}
	for deg := -720; deg <= 720; deg += 15 {
		if got := o.Position(Radians(float64(deg))); got != center {
			t.Fatalf("[deg %d] expected zero radius orbit to stay at %v; got %v", deg, center, got)
		}
	}
}

func TestBinaryQuarterTurn(t *testing.T) {
	a, b := Binary(types.XYZ(0, 2, 0), 0.6, 0, PlaneXY)
	theta := Radians(90)

	if got := a.Position(theta); !got.ApproxEqual(types.XYZ(0, 2.6, 0), eps) {
		t.Fatalf("expected body A at (0, 2.6, 0); got %v", got)
	}
	if got := b.Position(theta); !got.ApproxEqual(types.XYZ(0, 1.4, 0), eps) {
		t.Fatalf("expected body B at (0, 1.4, 0); got %v", got)
	}
}

func TestOrbitPlanes(t *testing.T) {
	type spec struct {
		plane  Plane
		center types.Vec3
		exp    types.Vec3
	}
	specs := []spec{
		{PlaneXY, types.XYZ(1, 1, 3), types.XYZ(1, 2, 3)},
		{PlaneXZ, types.XYZ(1, 1, 3), types.XYZ(1, 1, 4)},
		{PlaneYZ, types.XYZ(0, 2, 3), types.XYZ(0, 2, 4)},
	}

	// At 90 degrees only the second plane axis moves.
	for index, s := range specs {
		o := Orbit{Center: s.center, Radius: 1, Plane: s.plane}
		if got := o.Position(math.Pi / 2); !got.ApproxEqual(s.exp, eps) {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, got)
		}
	}
}

func TestParsePlane(t *testing.T) {
	for name, exp := range map[string]Plane{"": PlaneXY, "XY": PlaneXY, "xz": PlaneXZ, "Yz": PlaneYZ} {
		got, err := ParsePlane(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != exp {
			t.Fatalf("expected %q to parse as %s; got %s", name, exp, got)
		}
	}

	expError := `orbit: unknown plane "zz"`
	if _, err := ParsePlane("zz"); err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestLineAndStatic(t *testing.T) {
	l := Line{Origin: types.XYZ(0, 2, 0), Direction: types.XYZ(1, 0, 0)}
	if got := l.Position(-1.96); !got.ApproxEqual(types.XYZ(-1.96, 2, 0), eps) {
		t.Fatalf("expected (-1.96, 2, 0); got %v", got)
	}

	s := Static{At: types.XYZ(4, 8, 0)}
	if got := s.Position(123); got != types.XYZ(4, 8, 0) {
		t.Fatalf("expected static body to stay at (4, 8, 0); got %v", got)
	}
}
