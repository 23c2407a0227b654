package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// Dim darkens r within dst by compositing black at the given alpha over it.
func Dim(dst draw.Image, r image.Rectangle, alpha uint8) {
	shade := image.NewUniform(color.RGBA{A: alpha})
	draw.Draw(dst, r.Intersect(dst.Bounds()), shade, image.Point{}, draw.Over)
}

// Spotlight copies the pixels of src within r into dst at the same position,
// replacing whatever was drawn there.
func Spotlight(dst draw.Image, src image.Image, r image.Rectangle) {
	r = r.Canon().Intersect(dst.Bounds()).Intersect(src.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, src, r.Min, draw.Src)
}

// Fill paints r within dst with a solid colour.
func Fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}
