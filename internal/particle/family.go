package particle

import (
	"image/color"
	"math/rand/v2"
)

// Shape selects the draw primitive a particle renders with.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeStar
	ShapeSquare
)

// Range is an inclusive-exclusive [Min, Max) interval sampled uniformly.
type Range struct {
	Min, Max float64
}

// Fixed returns a range that always samples v.
func Fixed(v float64) Range { return Range{Min: v, Max: v} }

func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func (r Range) zero() bool { return r.Min == 0 && r.Max == 0 }

// Motion holds the per-spawn ranges of one spawn kind (ambient or forced).
type Motion struct {
	Size Range
	// VelX/VelY are used unless Speed is set, in which case the velocity
	// points in a uniformly random direction with a magnitude from Speed.
	VelX  Range
	VelY  Range
	Speed Range
	Life  Range
	// MaxLife is the fade denominator. Zero means the sampled life.
	MaxLife float64
	// Decrement is subtracted from life on every step. Zero means 1.
	Decrement Range
}

// Family is the data that parameterizes one visual effect. Every effect of
// the presentation is a Family; there is one engine for all of them.
type Family struct {
	Name    string
	Palette []color.NRGBA
	Shape   Shape
	Spikes  int

	Ambient Motion
	// Forced is used for interaction-triggered spawns. When its Life is
	// unset the family has a single kind and Ambient is used.
	Forced Motion

	Gravity float64
	// Damping multiplies velocity every step. Zero disables it.
	Damping float64

	Rotation Range
	Spin     Range
	// Delay is the number of steps a particle stays hidden after spawn.
	Delay Range
	// Jitter spreads the spawn point by up to Jitter pixels per axis.
	Jitter float64
	// Shrink scales the drawn size by the opacity.
	Shrink bool
}

func (f *Family) motion(forced bool) *Motion {
	if forced && !f.Forced.Life.zero() {
		return &f.Forced
	}
	return &f.Ambient
}

func (f *Family) pick(rng *rand.Rand) color.NRGBA {
	if len(f.Palette) == 0 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return f.Palette[rng.IntN(len(f.Palette))]
}
