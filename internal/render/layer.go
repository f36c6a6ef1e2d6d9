// Package render draws particle surfaces with ebiten.
package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/fairy-celebration/internal/particle"
)

var whiteSubImage *ebiten.Image

func init() {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Layer is an offscreen image owned by one effect driver. It implements
// particle.Surface.
type Layer struct {
	img *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

func NewLayer(width, height int) *Layer {
	l := &Layer{}
	l.Resize(width, height)
	return l
}

// Wrap draws onto an image owned by someone else, such as the screen.
// Resize must not be called on a wrapped layer.
func Wrap(img *ebiten.Image) *Layer {
	return &Layer{img: img}
}

// Resize reallocates the backing image when the viewport changed.
func (l *Layer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if l.img != nil {
		b := l.img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		l.img.Deallocate()
	}
	l.img = ebiten.NewImage(width, height)
}

func (l *Layer) Image() *ebiten.Image { return l.img }

// DrawTo composites the layer onto dst.
func (l *Layer) DrawTo(dst *ebiten.Image) {
	if l.img == nil {
		return
	}
	dst.DrawImage(l.img, nil)
}

func (l *Layer) Clear() {
	if l.img != nil {
		l.img.Clear()
	}
}

func (l *Layer) Circle(x, y, r float64, clr color.NRGBA) {
	if l.img == nil {
		return
	}
	vector.DrawFilledCircle(l.img, float32(x), float32(y), float32(r), clr, true)
}

func (l *Layer) Star(x, y, outer, inner float64, spikes int, rotation float64, clr color.NRGBA) {
	l.fan(x, y, particle.StarPoints(x, y, outer, inner, spikes, rotation), clr)
}

func (l *Layer) Rect(x, y, w, h, rotation float64, clr color.NRGBA) {
	pts := particle.RectPoints(x, y, w, h, rotation)
	l.fan(x, y, pts[:], clr)
}

// fan fills the polygon pts as a triangle fan around (cx, cy). Stars and
// rectangles are both star-shaped around their centre, so the fan covers
// them exactly.
func (l *Layer) fan(cx, cy float64, pts []mgl64.Vec2, clr color.NRGBA) {
	if l.img == nil || len(pts) < 3 {
		return
	}
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff

	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	l.vs = append(l.vs[:0], vertex(cx, cy))
	l.is = l.is[:0]
	for i, p := range pts {
		l.vs = append(l.vs, vertex(p.X(), p.Y()))
		next := (i+1)%len(pts) + 1
		l.is = append(l.is, 0, uint16(i+1), uint16(next))
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	l.img.DrawTriangles(l.vs, l.is, whiteSubImage, op)
}

// DrawQuad maps all of src onto the quadrilateral quad (top-left,
// top-right, bottom-right, bottom-left) of dst at opacity alpha.
func DrawQuad(dst, src *ebiten.Image, quad [4]mgl64.Vec2, alpha float32) {
	b := src.Bounds()
	corners := [4]image.Point{b.Min, {b.Max.X, b.Min.Y}, b.Max, {b.Min.X, b.Max.Y}}
	vs := make([]ebiten.Vertex, len(quad))
	for i, p := range quad {
		vs[i] = ebiten.Vertex{
			DstX: float32(p.X()), DstY: float32(p.Y()),
			SrcX: float32(corners[i].X), SrcY: float32(corners[i].Y),
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: alpha,
		}
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.Filter = ebiten.FilterLinear
	op.AntiAlias = true
	dst.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, src, op)
}
