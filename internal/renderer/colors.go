package renderer

import (
	"fmt"
	"image/color"

	"github.com/avdeyev/orbitgen/internal/manifest"
)

// Tint divisors used by the diagram: spokes are drawn at a third of the
// entity color, glow halos at a quarter, glyph body fills at an eighth.
const (
	spokeDim = 3
	glowDim  = 4
	bodyDim  = 8
)

// dim divides each channel, producing a darker shade of the same hue.
func dim(c color.RGBA, divisor int) color.RGBA {
	if divisor <= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(int(c.R) / divisor),
		G: uint8(int(c.G) / divisor),
		B: uint8(int(c.B) / divisor),
		A: 255,
	}
}

// hexColor formats a color for SVG output.
func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// toRGBA converts a manifest color to the stdlib representation.
func toRGBA(c manifest.RGB) color.RGBA {
	return c.RGBA()
}
