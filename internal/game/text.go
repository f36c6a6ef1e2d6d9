package game

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

const lineHeight = 16

// drawText draws str with its top-left corner at x, y, scaled by scale.
func drawText(dst *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.LineSpacing = lineHeight
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, opts)
}

// drawCentered draws str horizontally centered on cx.
func drawCentered(dst *ebiten.Image, str string, cx, y, scale float64, clr color.Color) {
	w := textWidth(str, scale)
	drawText(dst, str, cx-w/2, y, scale, clr)
}

func textWidth(str string, scale float64) float64 {
	w, _ := text.Measure(str, face, lineHeight)
	return w * scale
}

// wrap breaks s into lines of at most width pixels at the given scale.
func wrap(s string, width, scale float64) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		next := word
		if line != "" {
			next = line + " " + word
		}
		if line != "" && textWidth(next, scale) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line = next
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
