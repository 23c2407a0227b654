package window

import (
	"image"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/ironsheep/screen-short/internal/editor"
)

// pointerEvent converts a shiny mouse event. Wheel events and button
// states other than press, release and motion are dropped.
func pointerEvent(e mouse.Event) (editor.PointerEvent, bool) {
	ev := editor.PointerEvent{Pos: image.Pt(int(e.X), int(e.Y))}
	switch e.Direction {
	case mouse.DirNone:
		ev.Action = editor.PointerMove
		return ev, true
	case mouse.DirPress:
		ev.Action = editor.PointerPress
	case mouse.DirRelease:
		ev.Action = editor.PointerRelease
	default:
		return ev, false
	}

	switch e.Button {
	case mouse.ButtonLeft:
		ev.Button = editor.ButtonLeft
	case mouse.ButtonMiddle:
		ev.Button = editor.ButtonMiddle
	case mouse.ButtonRight:
		ev.Button = editor.ButtonRight
	default:
		return ev, false
	}
	return ev, true
}

// keyEvent converts a key press. Releases and repeats are dropped.
func keyEvent(e key.Event) (editor.KeyEvent, bool) {
	if e.Direction != key.DirPress {
		return editor.KeyEvent{}, false
	}
	switch e.Code {
	case key.CodeReturnEnter, key.CodeKeypadEnter:
		return editor.KeyEvent{Key: editor.KeyEnter}, true
	case key.CodeEscape:
		return editor.KeyEvent{Key: editor.KeyEscape}, true
	}
	if e.Rune <= 0 || e.Modifiers&(key.ModControl|key.ModAlt|key.ModMeta) != 0 {
		return editor.KeyEvent{}, false
	}
	return editor.KeyEvent{Key: editor.KeyOther, Rune: e.Rune}, true
}
