package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/screen-short/internal/editor"
	"github.com/ironsheep/screen-short/internal/imaging"
)

var (
	buttonColor  = color.RGBA{R: 0x4C, G: 0x56, B: 0x6A, A: 0xFF}
	buttonBorder = color.RGBA{R: 0x5E, G: 0x81, B: 0xAC, A: 0xFF}
	checkedColor = color.RGBA{R: 0x88, G: 0xC0, B: 0xD0, A: 0xFF}
	checkedText  = color.RGBA{R: 0x2E, G: 0x34, B: 0x40, A: 0xFF}
)

// drawToolbar paints the editing toolbar when visible. The active tool's
// button is drawn checked.
func drawToolbar(dst *image.RGBA, snap editor.Snapshot, cfg Config) {
	tb := snap.Toolbar
	if !tb.Visible {
		return
	}
	imaging.Fill(dst, tb.Rect.Image(), cfg.ToolbarBackground)

	face := basicfont.Face7x13
	for _, b := range tb.Buttons {
		r := b.Rect.Image()
		fill, text := color.Color(buttonColor), cfg.ToolbarForeground
		if snap.ToolActive && b.Action == editor.ActionTool && b.Tool == snap.ActiveTool {
			fill, text = checkedColor, checkedText
		}
		imaging.Fill(dst, r, buttonBorder)
		imaging.Fill(dst, r.Inset(1), fill)

		d := &font.Drawer{Dst: dst, Src: image.NewUniform(text), Face: face}
		baseline := r.Min.Y + (r.Dy()+face.Ascent-face.Descent)/2
		d.Dot = fixed.P(r.Min.X+editor.ButtonTextInset, baseline)
		d.DrawString(b.Label)
	}
}
