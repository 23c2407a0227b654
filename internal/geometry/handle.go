package geometry

import "image"

// Handle identifies which part of a selection a point falls on.
type Handle int

const (
	// HandleNone means the point is outside the selection.
	HandleNone Handle = iota
	// HandleMove means the point is inside the selection but not near a corner.
	HandleMove
	// HandleTopLeft means the point is within the margin of the top-left corner.
	HandleTopLeft
	// HandleBottomRight means the point is within the margin of the bottom-right corner.
	HandleBottomRight
)

// DefaultHandleMargin is the corner hit radius, in pixels, used by the editor.
const DefaultHandleMargin = 5

func (h Handle) String() string {
	switch h {
	case HandleMove:
		return "move"
	case HandleTopLeft:
		return "resize_tl"
	case HandleBottomRight:
		return "resize_br"
	default:
		return "none"
	}
}

// HitTest classifies p against the normalized selection.
//
// Parameters:
//   - p: Pointer position in window coordinates.
//   - selection: The selection rect. Raw (possibly inverted) corners are
//     accepted; the test runs against the normalized rect.
//   - margin: Handle radius in pixels. DefaultHandleMargin is 5.
//
// Returns:
//   - HandleBottomRight or HandleTopLeft when p is within margin of that corner
//   - HandleMove when p is inside the selection, edges included
//   - HandleNone otherwise
//
// # Priority
//
// Corner handles use box (Chebyshev) distance: p is on a handle when both
// |dx| and |dy| to the corner are at most margin. The bottom-right corner is
// checked first, then the top-left corner, then the interior, so a point near
// a corner always resolves to the handle even when it is also inside.
func HitTest(p image.Point, selection Rect, margin int) Handle {
	n := selection.Normalize()
	if margin < 0 {
		margin = 0
	}
	if near(p, image.Pt(n.X2, n.Y2), margin) {
		return HandleBottomRight
	}
	if near(p, image.Pt(n.X1, n.Y1), margin) {
		return HandleTopLeft
	}
	if n.Contains(p) {
		return HandleMove
	}
	return HandleNone
}

func near(p, corner image.Point, margin int) bool {
	return abs(p.X-corner.X) <= margin && abs(p.Y-corner.Y) <= margin
}
