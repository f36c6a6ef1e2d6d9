package scroll

import (
	"math/rand/v2"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	wobbleAmplitude = 12.0
	wobbleRate      = 0.01
)

// Floater is a decoration drifting around its anchor point.
type Floater struct {
	Anchor mgl64.Vec2
	// Speed divides the cursor offset; larger values move less.
	Speed float64
	// Parallax is the scroll speed factor.
	Parallax float64
	Glyph    string
	seed     float64
}

// Floaters wobble decorations with Perlin noise and pull them away from
// the cursor.
type Floaters struct {
	noise *perlin.Perlin
	items []Floater
}

func NewFloaters(seed int64) *Floaters {
	return &Floaters{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

func (f *Floaters) Add(fl Floater, rng *rand.Rand) {
	if fl.Speed <= 0 {
		fl.Speed = 10
	}
	fl.seed = rng.Float64() * 1000
	f.items = append(f.items, fl)
}

func (f *Floaters) Len() int         { return len(f.items) }
func (f *Floaters) At(i int) Floater { return f.items[i] }

// CursorOffset is the shift of a decoration moving at speed when the
// cursor is at c in a w×h window.
func CursorOffset(c mgl64.Vec2, w, h, speed float64) mgl64.Vec2 {
	if speed <= 0 {
		speed = 10
	}
	return mgl64.Vec2{(w/2 - c.X()) / speed, (h/2 - c.Y()) / speed}
}

// Position returns where floater i is drawn on tick, in page space.
func (f *Floaters) Position(i int, tick uint64, cursor mgl64.Vec2, w, h, scroll float64) mgl64.Vec2 {
	fl := f.items[i]
	t := float64(tick) * wobbleRate
	wobble := mgl64.Vec2{
		f.noise.Noise2D(fl.seed, t) * wobbleAmplitude,
		f.noise.Noise2D(t, fl.seed) * wobbleAmplitude,
	}
	p := fl.Anchor.Add(wobble).Add(CursorOffset(cursor, w, h, fl.Speed))
	p[1] += Parallax(scroll, fl.Parallax)
	return p
}
