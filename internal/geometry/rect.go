package geometry

import "image"

// Rect is an axis-aligned rectangle defined by two corners.
//
// The zero Rect has both corners at the origin and is not valid.
type Rect struct {
	X1 int `json:"x1"` // First corner X (left edge once normalized)
	Y1 int `json:"y1"` // First corner Y (top edge once normalized)
	X2 int `json:"x2"` // Second corner X (right edge once normalized)
	Y2 int `json:"y2"` // Second corner Y (bottom edge once normalized)
}

// R is shorthand for Rect{x1, y1, x2, y2}.
func R(x1, y1, x2, y2 int) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// FromPoints returns the rect spanned by two corner points, in the order given.
func FromPoints(a, b image.Point) Rect {
	return Rect{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}

// FromImage converts an image.Rectangle into a Rect.
func FromImage(r image.Rectangle) Rect {
	return Rect{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// Normalize returns r with its corners swapped as needed so that X1 <= X2
// and Y1 <= Y2. Normalize is idempotent.
func (r Rect) Normalize() Rect {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// Valid reports whether the normalized rect has positive width and height.
func (r Rect) Valid() bool {
	n := r.Normalize()
	return n.X2 > n.X1 && n.Y2 > n.Y1
}

// Width returns the width of the normalized rect.
func (r Rect) Width() int {
	n := r.Normalize()
	return n.X2 - n.X1
}

// Height returns the height of the normalized rect.
func (r Rect) Height() int {
	n := r.Normalize()
	return n.Y2 - n.Y1
}

// TopLeft returns the top-left corner of the normalized rect.
func (r Rect) TopLeft() image.Point {
	n := r.Normalize()
	return image.Pt(n.X1, n.Y1)
}

// BottomRight returns the bottom-right corner of the normalized rect.
func (r Rect) BottomRight() image.Point {
	n := r.Normalize()
	return image.Pt(n.X2, n.Y2)
}

// Translate returns r moved by d. Corner order is preserved.
func (r Rect) Translate(d image.Point) Rect {
	return Rect{X1: r.X1 + d.X, Y1: r.Y1 + d.Y, X2: r.X2 + d.X, Y2: r.Y2 + d.Y}
}

// Contains reports whether p lies within the normalized rect, edges included.
func (r Rect) Contains(p image.Point) bool {
	n := r.Normalize()
	return p.X >= n.X1 && p.X <= n.X2 && p.Y >= n.Y1 && p.Y <= n.Y2
}

// Image returns the normalized rect as an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	n := r.Normalize()
	return image.Rect(n.X1, n.Y1, n.X2, n.Y2)
}

// Clamp returns p with each coordinate clamped to the normalized bounds,
// edges included. A point already inside bounds is returned unchanged.
func Clamp(p image.Point, bounds Rect) image.Point {
	n := bounds.Normalize()
	return image.Pt(clamp(p.X, n.X1, n.X2), clamp(p.Y, n.Y1, n.Y2))
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
