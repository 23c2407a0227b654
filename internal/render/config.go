package render

import (
	"image/color"

	"github.com/ironsheep/screen-short/internal/shape"
)

// DimAlpha is the opacity of the black shade laid over the preview.
const DimAlpha = 100

// Config is the immutable snapshot of visual parameters.
type Config struct {
	SelectionColor color.Color
	SelectionWidth float64

	ShapeColor color.Color
	ShapeWidth float64

	ToolbarBackground color.Color
	ToolbarForeground color.Color

	// Tools lists the enabled annotation tools in toolbar order.
	Tools []shape.Kind
}

// DefaultConfig returns the built-in visual defaults.
func DefaultConfig() Config {
	blue := color.RGBA{R: 0x1E, G: 0x90, B: 0xFF, A: 0xFF}
	return Config{
		SelectionColor:    blue,
		SelectionWidth:    2,
		ShapeColor:        blue,
		ShapeWidth:        2,
		ToolbarBackground: color.RGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xFF},
		ToolbarForeground: color.RGBA{R: 0xEB, G: 0xDB, B: 0xB2, A: 0xFF},
		Tools:             []shape.Kind{shape.Rectangle, shape.Arrow, shape.Circle},
	}
}

// SelectionPen returns the pen for the selection border.
func (c Config) SelectionPen() shape.Pen {
	return shape.Pen{Color: c.SelectionColor, Width: c.SelectionWidth}
}

// ShapePen returns the pen for annotation shapes.
func (c Config) ShapePen() shape.Pen {
	return shape.Pen{Color: c.ShapeColor, Width: c.ShapeWidth}
}
