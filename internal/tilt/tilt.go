// Package tilt turns a card toward the pointer: a perspective rotation of
// up to MaxAngle degrees on each axis plus a shine that follows the cursor.
package tilt

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MaxAngle bounds both rotations, in degrees.
	MaxAngle = 15.0
	// Perspective is the viewer distance in pixels.
	Perspective = 1000.0
	// ShineAlpha is the opacity of the shine at the cursor.
	ShineAlpha = 0.3
	// ShineReach is the shine radius as a fraction of the distance from
	// the cursor to the farthest card corner.
	ShineReach = 0.6
)

// Angles returns the rotation about the X and Y axes, in degrees, for a
// cursor at (x, y) over r. A cursor right of centre turns the card about Y
// by a positive angle; a cursor above centre turns it about X positively.
func Angles(r image.Rectangle, x, y float64) (rotX, rotY float64) {
	if r.Empty() {
		return 0, 0
	}
	hw, hh := float64(r.Dx())/2, float64(r.Dy())/2
	cx, cy := float64(r.Min.X)+hw, float64(r.Min.Y)+hh
	rotY = (x - cx) / hw * MaxAngle
	rotX = -(y - cy) / hh * MaxAngle
	return clamp(rotX), clamp(rotY)
}

func clamp(a float64) float64 {
	return min(max(a, -MaxAngle), MaxAngle)
}

// Card is the tilt state of one card.
type Card struct {
	RotX, RotY float64
	// Shine is the cursor position relative to the card's top-left corner.
	Shine  mgl64.Vec2
	Active bool
}

// Update points the card at cursor while it is over r and resets it as
// soon as it leaves. It reports whether the card is tilted.
func (c *Card) Update(r image.Rectangle, cursor mgl64.Vec2) bool {
	x, y := cursor.X(), cursor.Y()
	if x < float64(r.Min.X) || y < float64(r.Min.Y) || x >= float64(r.Max.X) || y >= float64(r.Max.Y) {
		c.Reset()
		return false
	}
	c.RotX, c.RotY = Angles(r, x, y)
	c.Shine = mgl64.Vec2{x - float64(r.Min.X), y - float64(r.Min.Y)}
	c.Active = true
	return true
}

func (c *Card) Reset() { *c = Card{} }

// Quad projects the corners of r, rotated about its centre, back onto the
// screen: top-left, top-right, bottom-right, bottom-left.
func (c *Card) Quad(r image.Rectangle) [4]mgl64.Vec2 {
	hw, hh := float64(r.Dx())/2, float64(r.Dy())/2
	center := mgl64.Vec2{float64(r.Min.X) + hw, float64(r.Min.Y) + hh}
	rot := mgl64.Rotate3DY(mgl64.DegToRad(c.RotY)).Mul3(mgl64.Rotate3DX(mgl64.DegToRad(c.RotX)))

	local := [4]mgl64.Vec3{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}}
	var out [4]mgl64.Vec2
	for i, v := range local {
		p := rot.Mul3x1(v)
		s := Perspective / (Perspective - p.Z())
		out[i] = center.Add(mgl64.Vec2{p.X() * s, p.Y() * s})
	}
	return out
}

// ShineRadius is the radius of the shine on a w×h card.
func (c *Card) ShineRadius(w, h float64) float64 {
	dx := math.Max(c.Shine.X(), w-c.Shine.X())
	dy := math.Max(c.Shine.Y(), h-c.Shine.Y())
	return math.Hypot(dx, dy) * ShineReach
}
