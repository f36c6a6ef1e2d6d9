package effects

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/iburimskiy/fairy-celebration/internal/particle"
)

// SparklePolicy rings a point with twinkles at radius 50–80.
type SparklePolicy struct {
	family particle.Family

	mu      sync.Mutex
	rng     *rand.Rand
	pending []burst
}

func NewSparklePolicy(tps float64, rng *rand.Rand) *SparklePolicy {
	return &SparklePolicy{
		family: SparkleFamily(tps),
		rng:    rng,
	}
}

// Around queues n sparkles around (x, y).
func (s *SparklePolicy) Around(x, y float64, n int) {
	s.mu.Lock()
	s.pending = append(s.pending, burst{x: x, y: y, n: n})
	s.mu.Unlock()
}

func (s *SparklePolicy) Spawn(pool *particle.Pool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.pending {
		for i := 0; i < b.n; i++ {
			angle := s.rng.Float64() * 2 * math.Pi
			radius := 50 + s.rng.Float64()*30
			p := particle.New(&s.family,
				b.x+math.Cos(angle)*radius,
				b.y+math.Sin(angle)*radius,
				true, s.rng)
			p.Life += p.Delay
			pool.Add(p)
		}
	}
	s.pending = s.pending[:0]
}
