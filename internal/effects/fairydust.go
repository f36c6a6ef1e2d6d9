package effects

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/fairy-celebration/internal/particle"
)

// DefaultDustThreshold is the per-axis pointer travel, in pixels, that has
// to be exceeded before another batch of fairy dust is released.
const DefaultDustThreshold = 5.0

// FairyDustPolicy turns pointer travel into batches of 3–5 stars.
type FairyDustPolicy struct {
	family    particle.Family
	threshold float64
	// OnBurst, when set, is called after each released batch with the
	// pool size.
	OnBurst func(poolLen int)

	mu      sync.Mutex
	rng     *rand.Rand
	last    mgl64.Vec2
	pending []mgl64.Vec2
}

func NewFairyDustPolicy(threshold float64, rng *rand.Rand) *FairyDustPolicy {
	if threshold <= 0 {
		threshold = DefaultDustThreshold
	}
	return &FairyDustPolicy{
		family:    FairyDustFamily(),
		threshold: threshold,
		rng:       rng,
	}
}

// Move reports a pointer position. It returns true when the travel since
// the last trigger point exceeded the threshold and a batch was queued.
func (f *FairyDustPolicy) Move(x, y float64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if math.Abs(x-f.last.X()) <= f.threshold && math.Abs(y-f.last.Y()) <= f.threshold {
		return false
	}
	f.last = mgl64.Vec2{x, y}
	f.pending = append(f.pending, f.last)
	return true
}

func (f *FairyDustPolicy) Spawn(pool *particle.Pool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, at := range f.pending {
		n := 3 + f.rng.IntN(3)
		for i := 0; i < n; i++ {
			pool.Add(particle.New(&f.family, at.X(), at.Y(), true, f.rng))
		}
		if f.OnBurst != nil {
			f.OnBurst(pool.Len())
		}
	}
	f.pending = f.pending[:0]
}
