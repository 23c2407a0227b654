package editor

import "image"

// PointerAction is the kind of pointer event.
type PointerAction int

const (
	// PointerMove is a motion event, with or without a button held.
	PointerMove PointerAction = iota
	// PointerPress is a button press.
	PointerPress
	// PointerRelease is a button release.
	PointerRelease
)

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// PointerEvent is a pointer event in window coordinates.
type PointerEvent struct {
	Action PointerAction
	Button Button
	Pos    image.Point
}

// Press returns a left-button press at (x, y).
func Press(x, y int) PointerEvent {
	return PointerEvent{Action: PointerPress, Button: ButtonLeft, Pos: image.Pt(x, y)}
}

// Move returns a motion event at (x, y).
func Move(x, y int) PointerEvent {
	return PointerEvent{Action: PointerMove, Pos: image.Pt(x, y)}
}

// Release returns a left-button release at (x, y).
func Release(x, y int) PointerEvent {
	return PointerEvent{Action: PointerRelease, Button: ButtonLeft, Pos: image.Pt(x, y)}
}

// Key identifies a keyboard key the editor reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyEscape
)

// KeyEvent is a key press. Rune carries the typed character for KeyOther.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// Outcome is the terminal result of a session.
type Outcome int

const (
	// Pending means the session is still running.
	Pending Outcome = iota
	// Confirmed means the user accepted a valid selection.
	Confirmed
	// Cancelled means the user abandoned the session.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// Result is returned by every transition.
type Result struct {
	// Repaint is set when visible state changed.
	Repaint bool
	// Outcome is Confirmed or Cancelled when the transition ended the session.
	Outcome Outcome
}

// Done reports whether the transition ended the session.
func (r Result) Done() bool {
	return r.Outcome != Pending
}

// Cursor is the pointer shape hint for the current hover position.
type Cursor int

const (
	CursorCrosshair Cursor = iota
	CursorArrow
	CursorResize
	CursorMove
)

func (c Cursor) String() string {
	switch c {
	case CursorArrow:
		return "arrow"
	case CursorResize:
		return "resize"
	case CursorMove:
		return "move"
	default:
		return "crosshair"
	}
}
