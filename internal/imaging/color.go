package imaging

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses a colour string like "#1E90FF", "#FFF" or "#1E90FF80".
//
// The three- and six-digit forms are opaque. The eight-digit form carries a
// straight (non-premultiplied) alpha byte; the returned color.RGBA is
// premultiplied as the image/color package requires.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimSpace(s)
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3, 6:
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		n := color.NRGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}
		return color.RGBAModel.Convert(n).(color.RGBA), nil
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length: %q", s)
	}
}

// FormatHexColor returns c as "#RRGGBB", ignoring alpha.
func FormatHexColor(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return strings.ToUpper(cf.Hex())
}
