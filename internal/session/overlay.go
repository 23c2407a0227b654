package session

import (
	"image"

	"github.com/ironsheep/screen-short/internal/editor"
	"github.com/ironsheep/screen-short/internal/geometry"
	"github.com/ironsheep/screen-short/internal/render"
	"github.com/ironsheep/screen-short/internal/shape"
)

// Overlay couples the edit state machine with the compositor. It is the
// whole surface a Frontend needs and is owned by a single goroutine.
type Overlay struct {
	edit *editor.EditState
	comp *render.Compositor
}

// NewOverlay creates an overlay for background displayed at its own size.
func NewOverlay(background image.Image, cfg render.Config, initialFullscreen bool) *Overlay {
	comp := render.NewCompositor(background, 0, 0, cfg)
	edit := editor.New(editor.Options{
		Bounds:           geometry.FromImage(comp.Bounds()),
		Tools:            cfg.Tools,
		InitialSelection: initialFullscreen,
	})
	return &Overlay{edit: edit, comp: comp}
}

// Size returns the overlay's window size.
func (o *Overlay) Size() image.Point {
	return o.comp.Bounds().Size()
}

// ProcessPointerEvent forwards a pointer event to the state machine.
func (o *Overlay) ProcessPointerEvent(ev editor.PointerEvent) editor.Result {
	return o.edit.HandlePointer(ev)
}

// ProcessKeyEvent forwards a key event to the state machine.
func (o *Overlay) ProcessKeyEvent(ev editor.KeyEvent) editor.Result {
	return o.edit.HandleKey(ev)
}

// ActivateTool toggles an annotation tool.
func (o *Overlay) ActivateTool(kind shape.Kind) editor.Result {
	return o.edit.ActivateTool(kind)
}

// Cancel ends the session without output, as when the window is closed.
func (o *Overlay) Cancel() editor.Result {
	return o.edit.Cancel()
}

// PreviewFrame renders the current live frame.
func (o *Overlay) PreviewFrame() *image.RGBA {
	return o.comp.Preview(o.edit.Snapshot())
}

// PreviewInto renders the current live frame into dst.
func (o *Overlay) PreviewInto(dst *image.RGBA) {
	o.comp.PreviewInto(dst, o.edit.Snapshot())
}

// IsConfirmable reports whether a confirm would produce output.
func (o *Overlay) IsConfirmable() bool {
	return o.edit.IsConfirmable()
}

// FinalImage renders the cropped, annotated result.
func (o *Overlay) FinalImage() (*image.RGBA, error) {
	return o.comp.Final(o.edit.Snapshot())
}

// FinalOutput renders the cropped, annotated result as PNG.
func (o *Overlay) FinalOutput() ([]byte, error) {
	return o.comp.FinalPNG(o.edit.Snapshot())
}

// Cursor returns the cursor hint for the last pointer position.
func (o *Overlay) Cursor() editor.Cursor {
	return o.edit.Cursor()
}

// Outcome returns how the session ended, or Pending.
func (o *Overlay) Outcome() editor.Outcome {
	return o.edit.Outcome()
}

// Snapshot returns the current edit state.
func (o *Overlay) Snapshot() editor.Snapshot {
	return o.edit.Snapshot()
}
