package editor

import (
	"image"

	"github.com/ironsheep/screen-short/internal/geometry"
	"github.com/ironsheep/screen-short/internal/shape"
)

// Toolbar layout constants. GlyphWidth matches the advance of
// basicfont.Face7x13, which the renderer uses for labels.
const (
	ToolbarPadding  = 5
	ToolbarSpacing  = 5
	ToolbarGap      = 10
	ButtonHeight    = 24
	ButtonTextInset = 10
	GlyphWidth      = 7
	ToolbarHeight   = ButtonHeight + 2*ToolbarPadding
)

// Action is what a toolbar button does when pressed.
type Action int

const (
	ActionTool Action = iota
	ActionConfirm
	ActionCancel
)

// ToolbarButton is a single button. Rect is in window coordinates once the
// toolbar has been placed.
type ToolbarButton struct {
	Label  string
	Action Action
	Tool   shape.Kind
	Rect   geometry.Rect
}

// Toolbar is the editing toolbar attached to the selection.
type Toolbar struct {
	Visible bool
	Rect    geometry.Rect
	Buttons []ToolbarButton
}

// newToolbar lays out buttons for the enabled tools followed by Confirm and
// Cancel, relative to the origin.
func newToolbar(tools []shape.Kind) Toolbar {
	var buttons []ToolbarButton
	for _, k := range tools {
		buttons = append(buttons, ToolbarButton{Label: k.Label(), Action: ActionTool, Tool: k})
	}
	buttons = append(buttons,
		ToolbarButton{Label: "Confirm", Action: ActionConfirm},
		ToolbarButton{Label: "Cancel", Action: ActionCancel},
	)

	x := ToolbarPadding
	for i := range buttons {
		w := len(buttons[i].Label)*GlyphWidth + 2*ButtonTextInset
		buttons[i].Rect = geometry.R(x, ToolbarPadding, x+w, ToolbarPadding+ButtonHeight)
		x += w + ToolbarSpacing
	}
	width := x - ToolbarSpacing + ToolbarPadding

	return Toolbar{
		Rect:    geometry.R(0, 0, width, ToolbarHeight),
		Buttons: buttons,
	}
}

// place positions the toolbar under the selection, or above it when there is
// no room below. When neither fits it sits inside the selection's bottom edge.
func (t *Toolbar) place(selection, window geometry.Rect) {
	sel := selection.Normalize()
	win := window.Normalize()
	h := t.Rect.Height()

	x := sel.X1
	y := sel.Y2 + ToolbarGap
	if y+h > win.Y2 {
		y = sel.Y1 - h - ToolbarGap
		if y < win.Y1 {
			y = sel.Y2 - h - ToolbarGap
		}
	}
	t.moveTo(image.Pt(x, y))
}

func (t *Toolbar) moveTo(p image.Point) {
	d := p.Sub(t.Rect.TopLeft())
	t.Rect = t.Rect.Translate(d)
	for i := range t.Buttons {
		t.Buttons[i].Rect = t.Buttons[i].Rect.Translate(d)
	}
}

// Contains reports whether p is over the visible toolbar.
func (t Toolbar) Contains(p image.Point) bool {
	return t.Visible && t.Rect.Contains(p)
}

// ButtonAt returns the button under p, if the toolbar is visible.
func (t Toolbar) ButtonAt(p image.Point) (ToolbarButton, bool) {
	if !t.Visible {
		return ToolbarButton{}, false
	}
	for _, b := range t.Buttons {
		if b.Rect.Contains(p) {
			return b, true
		}
	}
	return ToolbarButton{}, false
}

func (t Toolbar) clone() Toolbar {
	c := t
	c.Buttons = append([]ToolbarButton(nil), t.Buttons...)
	return c
}
