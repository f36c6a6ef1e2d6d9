package effects

import (
	"math"

	"github.com/iburimskiy/fairy-celebration/internal/particle"
)

// Durations of the one-shot effects are written in milliseconds and
// converted to ticks at the engine's tick rate.
func ticks(tps, ms float64) float64 {
	return ms * tps / 1000
}

// AmbientFamily is the slow background mote. Forced motes are the short,
// fast kind spawned by interactions.
func AmbientFamily() particle.Family {
	return particle.Family{
		Name:    "ambient",
		Palette: ambientPalette,
		Shape:   particle.ShapeCircle,
		Ambient: particle.Motion{
			Size:    particle.Range{Min: 1, Max: 4},
			VelX:    particle.Range{Min: -0.5, Max: 0.5},
			VelY:    particle.Range{Min: -1.5, Max: -0.5},
			Life:    particle.Range{Min: 100, Max: 300},
			MaxLife: 300,
		},
		Forced: particle.Motion{
			Size:    particle.Range{Min: 2, Max: 6},
			VelX:    particle.Range{Min: -1.5, Max: 1.5},
			VelY:    particle.Range{Min: -3, Max: -1},
			Life:    particle.Range{Min: 30, Max: 50},
			MaxLife: 50,
		},
	}
}

// FairyDustFamily is the star-shaped glitter that falls off the cursor.
func FairyDustFamily() particle.Family {
	return particle.Family{
		Name:    "fairy-dust",
		Palette: glitterPalette,
		Shape:   particle.ShapeStar,
		Spikes:  5,
		Ambient: particle.Motion{
			Size:      particle.Range{Min: 1, Max: 4},
			Speed:     particle.Range{Min: 0.5, Max: 2.5},
			Life:      particle.Fixed(1),
			MaxLife:   1,
			Decrement: particle.Range{Min: 0.01, Max: 0.06},
		},
		Gravity: 0.05,
		Damping: 0.99,
		Jitter:  5,
	}
}

// TrailFamily is the soft dot left on every pointer move. It drifts up
// and sideways and shrinks away within one second.
func TrailFamily(tps float64) particle.Family {
	life := ticks(tps, 1000)
	return particle.Family{
		Name:    "trail",
		Palette: trailPalette,
		Shape:   particle.ShapeCircle,
		Ambient: particle.Motion{
			Size:    particle.Range{Min: 2, Max: 7},
			VelX:    particle.Range{Min: -25 / life, Max: 25 / life},
			VelY:    particle.Range{Min: -70 / life, Max: -20 / life},
			Life:    particle.Fixed(life),
			MaxLife: life,
		},
		Shrink: true,
	}
}

// ConfettiFamily covers one gift-box burst. Pieces appear after a short
// random delay and fade only in their last second.
func ConfettiFamily(tps float64) particle.Family {
	return particle.Family{
		Name:    "confetti",
		Palette: glitterPalette,
		Shape:   particle.ShapeSquare,
		Ambient: particle.Motion{
			Size:    particle.Range{Min: 5, Max: 15},
			Life:    particle.Range{Min: ticks(tps, 1500), Max: ticks(tps, 2500)},
			MaxLife: ticks(tps, 1000),
		},
		Rotation: particle.Range{Min: 0, Max: 2 * math.Pi},
		Spin:     particle.Range{Min: 0, Max: 2 * math.Pi / ticks(tps, 2000)},
		// At least one tick, so every piece is first seen where it
		// spawned.
		Delay: particle.Range{Min: 1, Max: ticks(tps, 500)},
	}
}

// SparkleFamily is the twinkle that rings a button or card after an action.
// Life is the visible span, a 500–800ms hold plus a 500ms fade; the
// policy adds the start delay on top.
func SparkleFamily(tps float64) particle.Family {
	return particle.Family{
		Name:    "sparkle",
		Palette: sparklePalette,
		Shape:   particle.ShapeStar,
		Spikes:  4,
		Ambient: particle.Motion{
			Size:    particle.Range{Min: 3, Max: 9},
			Life:    particle.Range{Min: ticks(tps, 1000), Max: ticks(tps, 1300)},
			MaxLife: ticks(tps, 500),
		},
		Spin:  particle.Range{Min: -0.05, Max: 0.05},
		Delay: particle.Range{Min: 0, Max: ticks(tps, 300)},
	}
}
