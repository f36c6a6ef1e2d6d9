package effects

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/iburimskiy/fairy-celebration/internal/particle"
)

const (
	// One background mote per this many square pixels of viewport.
	DefaultAmbientDensity = 15000.0
	// Below this many live motes a new one rises from the bottom edge.
	DefaultAmbientMinimum = 50
)

// AmbientPolicy seeds the viewport once and then keeps a minimum number of
// motes alive by releasing one per tick from just below the bottom edge.
type AmbientPolicy struct {
	family  particle.Family
	density float64
	minimum int

	mu     sync.Mutex
	rng    *rand.Rand
	width  float64
	height float64
	bursts []burst
}

type burst struct {
	x, y float64
	n    int
}

func NewAmbientPolicy(density float64, minimum int, rng *rand.Rand) *AmbientPolicy {
	if density <= 0 {
		density = DefaultAmbientDensity
	}
	if minimum <= 0 {
		minimum = DefaultAmbientMinimum
	}
	return &AmbientPolicy{
		family:  AmbientFamily(),
		density: density,
		minimum: minimum,
		rng:     rng,
	}
}

// Resize records the viewport used for seeding and respawn positions.
func (a *AmbientPolicy) Resize(width, height float64) {
	a.mu.Lock()
	a.width, a.height = width, height
	a.mu.Unlock()
}

// SeedCount is floor(width*height/density).
func (a *AmbientPolicy) SeedCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seedCount()
}

func (a *AmbientPolicy) seedCount() int {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return int(math.Floor(a.width * a.height / a.density))
}

// Seed fills the pool with motes spread over the whole viewport and returns
// how many were added. The count follows the viewport area even when it
// exceeds the pool ceiling.
func (a *AmbientPolicy) Seed(pool *particle.Pool) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := a.seedCount()
	for i := 0; i < n; i++ {
		pool.Fill(particle.New(&a.family, a.rng.Float64()*a.width, a.rng.Float64()*a.height, false, a.rng))
	}
	return n
}

// Burst queues n forced motes at (x, y) for the next tick.
func (a *AmbientPolicy) Burst(x, y float64, n int) {
	a.mu.Lock()
	a.bursts = append(a.bursts, burst{x: x, y: y, n: n})
	a.mu.Unlock()
}

func (a *AmbientPolicy) Spawn(pool *particle.Pool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, b := range a.bursts {
		for i := 0; i < b.n; i++ {
			pool.Add(particle.New(&a.family, b.x, b.y, true, a.rng))
		}
	}
	a.bursts = a.bursts[:0]

	if a.width > 0 && pool.Len() < a.minimum {
		pool.Add(particle.New(&a.family, a.rng.Float64()*a.width, a.height+10, false, a.rng))
	}
}
