package effects

import (
	"image"
	"math/rand/v2"
	"sync"

	"github.com/iburimskiy/fairy-celebration/internal/particle"
)

// ConfettiPieces is the size of one gift-opening burst.
const ConfettiPieces = 50

// ConfettiPolicy releases a fixed batch of pieces across an area on each
// Burst. Pieces fall 100–250px over their lifetime.
type ConfettiPolicy struct {
	family particle.Family

	mu      sync.Mutex
	rng     *rand.Rand
	area    image.Rectangle
	pending int
}

func NewConfettiPolicy(tps float64, rng *rand.Rand) *ConfettiPolicy {
	return &ConfettiPolicy{
		family: ConfettiFamily(tps),
		rng:    rng,
	}
}

// SetArea sets the span the pieces start from: x uniform over its width,
// y at its top edge.
func (c *ConfettiPolicy) SetArea(r image.Rectangle) {
	c.mu.Lock()
	c.area = r
	c.mu.Unlock()
}

func (c *ConfettiPolicy) Burst() {
	c.mu.Lock()
	c.pending++
	c.mu.Unlock()
}

func (c *ConfettiPolicy) Spawn(pool *particle.Pool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for ; c.pending > 0; c.pending-- {
		for i := 0; i < ConfettiPieces; i++ {
			x := float64(c.area.Min.X) + c.rng.Float64()*float64(c.area.Dx())
			p := particle.New(&c.family, x, float64(c.area.Min.Y), true, c.rng)
			fall := 100 + c.rng.Float64()*150
			if moving := p.Life - p.Delay; moving > 0 {
				p.Vel[1] = fall / moving
			}
			p.Vel[0] = (c.rng.Float64() - 0.5) * 0.4
			pool.Add(p)
		}
	}
}
