package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Parse reads a "#rrggbb" hex string or a CSS color name.
func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return fromColorful(c), nil
	}

	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown color name %q", s)
	}

	return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
}

// Swatches returns n opaque colors with evenly spaced hues, starting at red.
func Swatches(n int) []color.NRGBA {
	swatches := make([]color.NRGBA, 0, n)

	for i := 0; i < n; i++ {
		hue := 360 * float64(i) / float64(n)
		swatches = append(swatches, fromColorful(colorful.Hsv(hue, 0.85, 0.95)))
	}

	return swatches
}

func Hex(c color.NRGBA) string {
	cf, _ := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return cf.Hex()
}

func fromColorful(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
