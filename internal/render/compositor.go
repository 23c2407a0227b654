package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/fogleman/gg"

	"github.com/ironsheep/screen-short/internal/editor"
	"github.com/ironsheep/screen-short/internal/imaging"
	"github.com/ironsheep/screen-short/internal/shape"
)

// ErrInvalidSelection is returned by Final when there is no selection with area.
var ErrInvalidSelection = errors.New("no valid selection")

// Compositor renders preview and final frames over one background image.
type Compositor struct {
	background *image.RGBA
	cfg        Config
}

// NewCompositor returns a compositor for background as displayed in a window
// of the given size. A zero size keeps the background's own size.
func NewCompositor(background image.Image, width, height int, cfg Config) *Compositor {
	return &Compositor{
		background: imaging.Fit(background, width, height),
		cfg:        cfg,
	}
}

// Bounds returns the window-space bounds of the background.
func (c *Compositor) Bounds() image.Rectangle {
	return c.background.Bounds()
}

// Config returns the render configuration.
func (c *Compositor) Config() Config {
	return c.cfg
}

// Preview returns a new live overlay frame for snap.
func (c *Compositor) Preview(snap editor.Snapshot) *image.RGBA {
	dst := image.NewRGBA(c.background.Bounds())
	c.PreviewInto(dst, snap)
	return dst
}

// PreviewInto draws the live overlay frame for snap into dst, which must
// start at (0,0). Pixels of dst beyond the background are left untouched.
func (c *Compositor) PreviewInto(dst *image.RGBA, snap editor.Snapshot) {
	bounds := c.background.Bounds()
	draw.Draw(dst, bounds, c.background, image.Point{}, draw.Src)
	imaging.Dim(dst, bounds, DimAlpha)

	dc := gg.NewContextForRGBA(dst)
	if snap.ValidSelection() {
		sel := snap.Selection.Image()
		imaging.Spotlight(dst, c.background, sel)

		pen := c.cfg.SelectionPen()
		pen.Apply(dc)
		dc.DrawRectangle(float64(sel.Min.X), float64(sel.Min.Y), float64(sel.Dx()), float64(sel.Dy()))
		dc.Stroke()
	}

	pen := c.cfg.ShapePen()
	shape.RenderAll(snap.Shapes, dc, pen)
	if snap.InProgress != nil {
		shape.Render(*snap.InProgress, dc, pen)
	}

	drawToolbar(dst, snap, c.cfg)
}

// Final crops the background to the selection and burns in every committed
// shape.
//
// Parameters:
//   - snap: The edit state to render. Its selection must have area.
//
// Returns:
//   - *image.RGBA: An image exactly the size of the normalized selection with
//     its origin at (0,0). Parts of the selection outside the background are
//     transparent.
//   - error: ErrInvalidSelection when there is no selection with area.
//
// Shapes are translated by the selection's top-left corner before stroking,
// so a shape keeps its on-screen position relative to the crop. The
// in-progress shape, the dim, the spotlight, the selection border and the
// toolbar never appear in the result.
func (c *Compositor) Final(snap editor.Snapshot) (*image.RGBA, error) {
	if !snap.ValidSelection() {
		return nil, ErrInvalidSelection
	}
	sel := snap.Selection.Normalize()

	cropped, err := imaging.Crop(c.background, sel.Image())
	if err != nil {
		return nil, fmt.Errorf("failed to crop selection: %w", err)
	}
	out := imaging.ToRGBA(cropped)

	dc := gg.NewContextForRGBA(out)
	offset := image.Pt(-sel.X1, -sel.Y1)
	pen := c.cfg.ShapePen()
	for _, s := range snap.Shapes {
		shape.Render(s.Translate(offset), dc, pen)
	}
	return out, nil
}

// FinalPNG returns Final encoded as PNG.
func (c *Compositor) FinalPNG(snap editor.Snapshot) ([]byte, error) {
	img, err := c.Final(snap)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(img)
}
