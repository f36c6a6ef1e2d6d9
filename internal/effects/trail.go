package effects

import (
	"math/rand/v2"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/fairy-celebration/internal/particle"
)

// TrailPolicy leaves exactly one dot per pointer move, no threshold.
type TrailPolicy struct {
	family particle.Family

	mu      sync.Mutex
	rng     *rand.Rand
	pending []mgl64.Vec2
}

func NewTrailPolicy(tps float64, rng *rand.Rand) *TrailPolicy {
	return &TrailPolicy{
		family: TrailFamily(tps),
		rng:    rng,
	}
}

func (t *TrailPolicy) Move(x, y float64) {
	t.mu.Lock()
	t.pending = append(t.pending, mgl64.Vec2{x, y})
	t.mu.Unlock()
}

func (t *TrailPolicy) Spawn(pool *particle.Pool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, at := range t.pending {
		pool.Add(particle.New(&t.family, at.X(), at.Y(), true, t.rng))
	}
	t.pending = t.pending[:0]
}
