package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
)

// ImageInfo contains metadata about an encoded capture.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format reported by the registered decoder ("png", "jpeg", "gif").
	Format string `json:"format"`

	// SizeBytes is the length of the encoded data.
	SizeBytes int `json:"size_bytes"`
}

// Inspect reads the header of encoded image data without decoding pixels.
func Inspect(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}
	return &ImageInfo{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Format:    format,
		SizeBytes: len(data),
	}, nil
}

// Decode decodes captured image bytes into an *image.RGBA with its origin at
// (0,0). Supported formats are PNG, JPEG, and GIF.
func Decode(data []byte) (*image.RGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("failed to decode image: no data")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return ToRGBA(img), nil
}

// ToRGBA returns img as an *image.RGBA whose bounds start at (0,0). The
// result never aliases img.
func ToRGBA(img image.Image) *image.RGBA {
	out := clone.AsRGBA(img)
	out.Rect = out.Rect.Sub(out.Rect.Min)
	return out
}

// Fit returns img scaled to exactly width x height. When img already has that
// size it is copied unchanged, so no resampling error is introduced.
func Fit(img image.Image, width, height int) *image.RGBA {
	b := img.Bounds()
	if width <= 0 || height <= 0 || (b.Dx() == width && b.Dy() == height) {
		return ToRGBA(img)
	}
	return ToRGBA(imaging.Resize(img, width, height, imaging.Lanczos))
}
