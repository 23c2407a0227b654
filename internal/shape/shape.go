// Package shape models the annotation shapes a user can draw on a selection
// and renders them onto a stroke canvas.
package shape

import (
	"fmt"
	"image"

	"github.com/ironsheep/screen-short/internal/geometry"
)

// Kind is the type of an annotation shape.
type Kind int

const (
	// Rectangle is a stroked rectangle on the normalized bounding box.
	Rectangle Kind = iota
	// Circle is a stroked ellipse inscribed in the normalized bounding box.
	Circle
	// Arrow is a line from start to end with an arrowhead at the end.
	Arrow
)

// Kinds lists every shape kind in toolbar order.
var Kinds = []Kind{Rectangle, Arrow, Circle}

// String returns the short name used in config keys ("rect", "circle", "arrow").
func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rect"
	case Circle:
		return "circle"
	case Arrow:
		return "arrow"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Label returns the human readable name shown on toolbar buttons.
func (k Kind) Label() string {
	switch k {
	case Rectangle:
		return "Rectangle"
	case Circle:
		return "Circle"
	case Arrow:
		return "Arrow"
	default:
		return k.String()
	}
}

// ParseKind parses a short kind name as returned by String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "rect", "rectangle":
		return Rectangle, nil
	case "circle", "ellipse":
		return Circle, nil
	case "arrow":
		return Arrow, nil
	}
	return 0, fmt.Errorf("unknown shape kind: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Rectangle, Circle, Arrow:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("unknown shape kind: %d", int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Shape is an annotation fully determined by its kind and two points, in
// window coordinates. Shapes are values; once committed they are never mutated.
type Shape struct {
	Kind  Kind        `json:"kind"`
	Start image.Point `json:"start"`
	End   image.Point `json:"end"`
}

// Bounds returns the normalized bounding box of the shape.
func (s Shape) Bounds() geometry.Rect {
	return geometry.FromPoints(s.Start, s.End).Normalize()
}

// Translate returns a copy of s moved by d.
func (s Shape) Translate(d image.Point) Shape {
	return Shape{Kind: s.Kind, Start: s.Start.Add(d), End: s.End.Add(d)}
}

// Degenerate reports whether the shape has coincident endpoints.
func (s Shape) Degenerate() bool {
	return s.Start == s.End
}
