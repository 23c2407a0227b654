package shape

import (
	"image/color"
)

// Canvas is the subset of a stroke-based 2D drawing context the shapes need.
// *gg.Context from github.com/fogleman/gg satisfies it.
type Canvas interface {
	SetColor(c color.Color)
	SetLineWidth(w float64)
	DrawRectangle(x, y, w, h float64)
	DrawEllipse(x, y, rx, ry float64)
	DrawLine(x1, y1, x2, y2 float64)
	Stroke()
}

// Pen holds stroke parameters.
type Pen struct {
	Color color.Color
	Width float64
}

// Apply sets the pen's colour and width on the canvas.
func (p Pen) Apply(c Canvas) {
	c.SetColor(p.Color)
	c.SetLineWidth(p.Width)
}

// Render strokes s onto c with pen. Degenerate shapes are drawn like any other
// and simply produce little or no ink.
func Render(s Shape, c Canvas, pen Pen) {
	pen.Apply(c)
	switch s.Kind {
	case Rectangle:
		b := s.Bounds()
		c.DrawRectangle(float64(b.X1), float64(b.Y1), float64(b.Width()), float64(b.Height()))
		c.Stroke()
	case Circle:
		b := s.Bounds()
		rx := float64(b.Width()) / 2
		ry := float64(b.Height()) / 2
		c.DrawEllipse(float64(b.X1)+rx, float64(b.Y1)+ry, rx, ry)
		c.Stroke()
	case Arrow:
		for _, seg := range s.Segments() {
			c.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
		}
		c.Stroke()
	}
}

// RenderAll strokes shapes in order, so later shapes paint over earlier ones.
func RenderAll(shapes []Shape, c Canvas, pen Pen) {
	for _, s := range shapes {
		Render(s, c, pen)
	}
}
