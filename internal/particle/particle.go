package particle

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle is one short-lived visual entity. It belongs to exactly one Pool.
type Particle struct {
	Pos mgl64.Vec2
	Vel mgl64.Vec2

	Size  float64
	Color color.NRGBA
	Shape Shape

	Life      float64
	MaxLife   float64
	Decrement float64

	Rotation float64
	Spin     float64
	Delay    float64

	spikes  int
	gravity float64
	damping float64
	shrink  bool
	age     float64
}

// New creates a particle of family f at (x, y). Forced particles are the
// interaction-triggered kind: shorter lived, faster and larger.
func New(f *Family, x, y float64, forced bool, rng *rand.Rand) Particle {
	m := f.motion(forced)

	if f.Jitter > 0 {
		x += (rng.Float64() - 0.5) * 2 * f.Jitter
		y += (rng.Float64() - 0.5) * 2 * f.Jitter
	}

	var vel mgl64.Vec2
	if !m.Speed.zero() {
		angle := rng.Float64() * 2 * math.Pi
		speed := m.Speed.Sample(rng)
		vel = mgl64.Vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}
	} else {
		vel = mgl64.Vec2{m.VelX.Sample(rng), m.VelY.Sample(rng)}
	}

	life := m.Life.Sample(rng)
	maxLife := m.MaxLife
	if maxLife <= 0 {
		maxLife = life
	}
	dec := 1.0
	if !m.Decrement.zero() {
		dec = m.Decrement.Sample(rng)
	}

	spikes := f.Spikes
	if spikes <= 0 {
		spikes = 5
	}

	return Particle{
		Pos:       mgl64.Vec2{x, y},
		Vel:       vel,
		Size:      m.Size.Sample(rng),
		Color:     f.pick(rng),
		Shape:     f.Shape,
		Life:      life,
		MaxLife:   maxLife,
		Decrement: dec,
		Rotation:  f.Rotation.Sample(rng),
		Spin:      f.Spin.Sample(rng),
		Delay:     math.Floor(f.Delay.Sample(rng)),
		spikes:    spikes,
		gravity:   f.Gravity,
		damping:   f.Damping,
		shrink:    f.Shrink,
	}
}

// Step advances the particle by one frame: integrate, apply forces,
// decrement life. A hidden particle holds still; only its life runs.
func (p *Particle) Step() {
	if p.Hidden() {
		p.Life -= p.Decrement
		p.age++
		return
	}
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel[1] += p.gravity
	if p.damping > 0 {
		p.Vel = p.Vel.Mul(p.damping)
	}
	p.Rotation += p.Spin
	p.Life -= p.Decrement
	p.age++
}

func (p *Particle) Expired() bool {
	return p.Life <= 0
}

// Hidden reports whether the particle is still inside its reveal delay.
func (p *Particle) Hidden() bool {
	return p.age < p.Delay
}

// Opacity is remaining life over max life, clamped to [0, 1].
func (p *Particle) Opacity() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return clamp01(p.Life / p.MaxLife)
}

// Render issues exactly one draw call, or none when the particle is
// expired, hidden or fully transparent.
func (p *Particle) Render(s Surface) {
	if s == nil || p.Expired() || p.Hidden() {
		return
	}
	a := p.Opacity()
	clr := p.Color
	clr.A = uint8(float64(clr.A) * a)
	if clr.A == 0 {
		return
	}
	size := p.Size
	if p.shrink {
		size *= a
	}

	x, y := p.Pos.X(), p.Pos.Y()
	switch p.Shape {
	case ShapeStar:
		s.Star(x, y, size, size/2, p.spikes, p.Rotation, clr)
	case ShapeSquare:
		s.Rect(x, y, size, size, p.Rotation, clr)
	default:
		s.Circle(x, y, size, clr)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
