package effects

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// hex parses a #rrggbb colour with the given alpha (0..1).
func hex(s string, alpha float64) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("effects: bad palette colour " + s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

var (
	// Pink, lavender, blue and gold motes of the background.
	ambientPalette = []color.NRGBA{
		{R: 255, G: 173, B: 210, A: 255},
		{R: 179, G: 127, B: 235, A: 255},
		{R: 105, G: 192, B: 255, A: 255},
		{R: 255, G: 213, B: 102, A: 255},
	}

	glitterPalette = []color.NRGBA{
		hex("#f759ab", 1),
		hex("#b37feb", 1),
		hex("#ffc53d", 1),
		hex("#69c0ff", 1),
	}

	trailPalette = []color.NRGBA{
		hex("#ffd700", 0.7),
		hex("#f759ab", 0.6),
		hex("#b37eeb", 0.5),
	}

	sparklePalette = []color.NRGBA{
		hex("#fff1b8", 0.8),
		hex("#ffd6e7", 0.8),
		hex("#ffffff", 0.8),
	}
)
