package window

import (
	"image"
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/ironsheep/screen-short/internal/editor"
)

func TestPointerEvent(t *testing.T) {
	tests := []struct {
		name string
		in   mouse.Event
		want editor.PointerEvent
		ok   bool
	}{
		{"left press", mouse.Event{X: 10.7, Y: 20.2, Button: mouse.ButtonLeft, Direction: mouse.DirPress},
			editor.PointerEvent{Action: editor.PointerPress, Button: editor.ButtonLeft, Pos: image.Pt(10, 20)}, true},
		{"left release", mouse.Event{X: 5, Y: 6, Button: mouse.ButtonLeft, Direction: mouse.DirRelease},
			editor.Release(5, 6), true},
		{"right press", mouse.Event{X: 1, Y: 1, Button: mouse.ButtonRight, Direction: mouse.DirPress},
			editor.PointerEvent{Action: editor.PointerPress, Button: editor.ButtonRight, Pos: image.Pt(1, 1)}, true},
		{"motion while held", mouse.Event{X: 30, Y: 40, Button: mouse.ButtonLeft, Direction: mouse.DirNone},
			editor.Move(30, 40), true},
		{"wheel", mouse.Event{X: 1, Y: 1, Button: mouse.ButtonWheelUp, Direction: mouse.DirStep}, editor.PointerEvent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pointerEvent(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		in   key.Event
		want editor.KeyEvent
		ok   bool
	}{
		{"enter", key.Event{Code: key.CodeReturnEnter, Direction: key.DirPress}, editor.KeyEvent{Key: editor.KeyEnter}, true},
		{"keypad enter", key.Event{Code: key.CodeKeypadEnter, Direction: key.DirPress}, editor.KeyEvent{Key: editor.KeyEnter}, true},
		{"escape", key.Event{Rune: -1, Code: key.CodeEscape, Direction: key.DirPress}, editor.KeyEvent{Key: editor.KeyEscape}, true},
		{"letter", key.Event{Rune: 'r', Code: key.CodeR, Direction: key.DirPress}, editor.KeyEvent{Rune: 'r'}, true},
		{"release", key.Event{Rune: 'r', Code: key.CodeR, Direction: key.DirRelease}, editor.KeyEvent{}, false},
		{"repeat", key.Event{Code: key.CodeReturnEnter, Direction: key.DirNone}, editor.KeyEvent{}, false},
		{"ctrl chord", key.Event{Rune: 'c', Code: key.CodeC, Modifiers: key.ModControl, Direction: key.DirPress}, editor.KeyEvent{}, false},
		{"no rune", key.Event{Rune: -1, Code: key.CodeLeftShift, Direction: key.DirPress}, editor.KeyEvent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyEvent(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
