package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xiaoyu2006/glens/types"
)

// Number of decimals used for every real-valued renderer field.
const Precision = 4

// Dialect selects the argument vocabulary understood by the renderer.
type Dialect uint8

const (
	// Long --key=value settings with multi-body mass point and disk lists.
	MultiBodyDialect Dialect = iota

	// The short -v/-m/-i form used for single-parameter sweeps.
	ShorthandDialect
)

func (d Dialect) String() string {
	switch d {
	case MultiBodyDialect:
		return "multi-body"
	case ShorthandDialect:
		return "shorthand"
	}
	return fmt.Sprintf("Dialect(%d)", uint8(d))
}

// Parse a dialect name. An empty name selects the multi-body dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "", "multi-body", "multibody":
		return MultiBodyDialect, nil
	case "shorthand":
		return ShorthandDialect, nil
	}
	return MultiBodyDialect, fmt.Errorf("scene: unknown argument dialect %q", name)
}

// The Serializer interface is implemented by all renderer argument dialects.
type Serializer interface {
	// Convert a frame config into the renderer argument list. The config
	// is validated first and no arguments are returned on failure.
	Serialize(*Config) ([]string, error)

	// The dialect this serializer emits.
	Dialect() Dialect
}

// Create a serializer for the given dialect.
func NewSerializer(d Dialect) (Serializer, error) {
	switch d {
	case MultiBodyDialect:
		return multiBodySerializer{}, nil
	case ShorthandDialect:
		return shorthandSerializer{}, nil
	}
	return nil, fmt.Errorf("scene: unknown argument dialect %s", d)
}

// Format a real value with a fixed number of decimals. Negative zero is
// written as zero so that frames stay diffable.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', Precision, 64)
	if s == "-0.0000" {
		return s[1:]
	}
	return s
}

func formatVec(v types.Vec3) string {
	return FormatFloat(v[0]) + "," + FormatFloat(v[1]) + "," + FormatFloat(v[2])
}

// Join per-item field lists with ";".
func joinItems(items []string) string {
	return strings.Join(items, ";")
}

func setting(key, value string) string {
	return key + "=" + value
}

func massPoints(bodies []Body) string {
	items := make([]string, 0, len(bodies))
	for _, b := range bodies {
		items = append(items, formatVec(b.Position)+","+FormatFloat(b.Mass))
	}
	return joinItems(items)
}

func spheres(spheres []Sphere) string {
	items := make([]string, 0, len(spheres))
	for _, s := range spheres {
		items = append(items, formatVec(s.Position)+","+formatVec(s.Color)+","+FormatFloat(s.Radius))
	}
	return joinItems(items)
}
