package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Crop extracts r from img. The result always measures r.Dx() x r.Dy() with
// its origin at (0,0); any part of r outside img's bounds is transparent.
func Crop(img image.Image, r image.Rectangle) (*image.NRGBA, error) {
	r = r.Canon()
	if r.Empty() {
		return nil, fmt.Errorf("invalid crop region (%d,%d)-(%d,%d): zero area",
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	}

	bounds := img.Bounds()
	if r.In(bounds) {
		return imaging.Crop(img, r), nil
	}

	canvas := imaging.New(r.Dx(), r.Dy(), color.Transparent)
	inside := r.Intersect(bounds)
	if inside.Empty() {
		return canvas, nil
	}
	return imaging.Paste(canvas, imaging.Crop(img, inside), inside.Min.Sub(r.Min)), nil
}
