// Package terminal renders particle surfaces as coloured cells on a tcell
// screen.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Pixel size of one terminal cell. Particle coordinates are in pixels so
// the same families and policies work on both back ends.
const (
	CellWidth  = 8
	CellHeight = 16
)

var background = colorful.Color{R: 0.05, G: 0.04, B: 0.09}

type cell struct {
	ch  rune
	clr colorful.Color
	set bool
}

// Layer is a cell grid owned by one effect driver. It implements
// particle.Surface.
type Layer struct {
	cols, rows int
	cells      []cell
}

func NewLayer(cols, rows int) *Layer {
	l := &Layer{}
	l.Resize(cols, rows)
	return l
}

func (l *Layer) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	l.cols, l.rows = cols, rows
	l.cells = make([]cell, cols*rows)
}

// PixelSize is the viewport the layer covers, in particle coordinates.
func (l *Layer) PixelSize() (int, int) {
	return l.cols * CellWidth, l.rows * CellHeight
}

func (l *Layer) Clear() {
	clear(l.cells)
}

func (l *Layer) Circle(x, y, r float64, clr color.NRGBA) {
	ch := '·'
	switch {
	case r >= 4:
		ch = '●'
	case r >= 2:
		ch = '•'
	}
	l.put(x, y, ch, clr)
}

func (l *Layer) Star(x, y, outer, _ float64, _ int, _ float64, clr color.NRGBA) {
	ch := '✦'
	if outer < 2 {
		ch = '+'
	}
	l.put(x, y, ch, clr)
}

func (l *Layer) Rect(x, y, _, _, rotation float64, clr color.NRGBA) {
	ch := '▪'
	if int(math.Abs(rotation)*2/math.Pi)%2 == 1 {
		ch = '◆'
	}
	l.put(x, y, ch, clr)
}

// At returns the rune drawn at a cell, or 0.
func (l *Layer) At(col, row int) rune {
	if col < 0 || row < 0 || col >= l.cols || row >= l.rows {
		return 0
	}
	return l.cells[row*l.cols+col].ch
}

func (l *Layer) put(x, y float64, ch rune, clr color.NRGBA) {
	col := int(math.Floor(x / CellWidth))
	row := int(math.Floor(y / CellHeight))
	if col < 0 || row < 0 || col >= l.cols || row >= l.rows {
		return
	}
	src := colorful.Color{
		R: float64(clr.R) / 0xff,
		G: float64(clr.G) / 0xff,
		B: float64(clr.B) / 0xff,
	}
	l.cells[row*l.cols+col] = cell{
		ch:  ch,
		clr: background.BlendRgb(src, float64(clr.A)/0xff),
		set: true,
	}
}

// Compose paints the layers onto screen in order; later layers win.
func Compose(screen tcell.Screen, layers ...*Layer) {
	Fill(screen)
	for _, l := range layers {
		l.Paint(screen)
	}
}

// Fill clears screen to the background colour.
func Fill(screen tcell.Screen) {
	screen.Fill(' ', baseStyle())
}

// Paint draws the set cells of the layer over whatever screen holds.
func (l *Layer) Paint(screen tcell.Screen) {
	base := baseStyle()
	for i, c := range l.cells {
		if !c.set {
			continue
		}
		style := base.Foreground(tcell.NewRGBColor(rgb(c.clr)))
		screen.SetContent(i%l.cols, i/l.cols, c.ch, nil, style)
	}
}

func baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(rgb(background)))
}

func rgb(c colorful.Color) (int32, int32, int32) {
	r, g, b := c.Clamped().RGB255()
	return int32(r), int32(g), int32(b)
}
