package particle

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Surface is the drawing target of one effect driver. The driver owns it
// exclusively and clears it every frame before redrawing.
type Surface interface {
	Clear()
	Circle(x, y, r float64, clr color.NRGBA)
	Star(x, y, outer, inner float64, spikes int, rotation float64, clr color.NRGBA)
	Rect(x, y, w, h, rotation float64, clr color.NRGBA)
}

// StarPoints returns the 2*spikes outline points of a star centred at
// (x, y), alternating outer and inner radius, first point straight up.
func StarPoints(x, y, outer, inner float64, spikes int, rotation float64) []mgl64.Vec2 {
	if spikes < 2 {
		spikes = 2
	}
	pts := make([]mgl64.Vec2, 0, spikes*2)
	rot := math.Pi/2*3 + rotation
	step := math.Pi / float64(spikes)
	for i := 0; i < spikes; i++ {
		pts = append(pts, mgl64.Vec2{x + math.Cos(rot)*outer, y + math.Sin(rot)*outer})
		rot += step
		pts = append(pts, mgl64.Vec2{x + math.Cos(rot)*inner, y + math.Sin(rot)*inner})
		rot += step
	}
	return pts
}

// RectPoints returns the four corners of a w×h rectangle centred at (x, y)
// rotated by rotation radians.
func RectPoints(x, y, w, h, rotation float64) [4]mgl64.Vec2 {
	hw, hh := w/2, h/2
	rot := mgl64.Rotate2D(rotation)
	corners := [4]mgl64.Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	for i, c := range corners {
		corners[i] = rot.Mul2x1(c).Add(mgl64.Vec2{x, y})
	}
	return corners
}
