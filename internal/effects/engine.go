package effects

import (
	"log"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/fairy-celebration/internal/particle"
)

// Layer names, in paint order.
const (
	LayerAmbient   = "ambient"
	LayerConfetti  = "confetti"
	LayerSparkle   = "sparkle"
	LayerTrail     = "trail"
	LayerFairyDust = "fairy-dust"
)

// Layers lists every layer in paint order.
var Layers = []string{LayerAmbient, LayerConfetti, LayerSparkle, LayerTrail, LayerFairyDust}

// Ceilings are the soft caps of each pool.
type Ceilings struct {
	Ambient   int
	FairyDust int
	Trail     int
	Confetti  int
	Sparkle   int
}

func DefaultCeilings() Ceilings {
	return Ceilings{
		Ambient:   400,
		FairyDust: 1500,
		Trail:     600,
		Confetti:  500,
		Sparkle:   300,
	}
}

type Options struct {
	TPS            float64
	AmbientDensity float64
	AmbientMinimum int
	DustThreshold  float64
	Ceilings       Ceilings
	// Seed makes every policy's randomness reproducible. Zero picks a
	// random seed.
	Seed uint64
}

// SurfaceFactory returns the surface a layer draws to. It may return nil
// when nothing can be drawn; the layer then only simulates.
type SurfaceFactory func(layer string) particle.Surface

// Engine owns every effect: one pool, one policy and one driver per layer.
// Drivers share no state, so Update advances them in parallel.
type Engine struct {
	Ambient   *AmbientPolicy
	FairyDust *FairyDustPolicy
	Trail     *TrailPolicy
	Confetti  *ConfettiPolicy
	Sparkle   *SparklePolicy

	drivers []*particle.Driver
	byName  map[string]*particle.Driver
	seeded  bool
}

func NewEngine(opts Options, surfaces SurfaceFactory) *Engine {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.Ceilings == (Ceilings{}) {
		opts.Ceilings = DefaultCeilings()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	// every policy gets its own source; rand.Rand is not safe to share
	// between drivers running in parallel
	src := func(i uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, i)) }

	e := &Engine{
		Ambient:   NewAmbientPolicy(opts.AmbientDensity, opts.AmbientMinimum, src(1)),
		FairyDust: NewFairyDustPolicy(opts.DustThreshold, src(2)),
		Trail:     NewTrailPolicy(opts.TPS, src(3)),
		Confetti:  NewConfettiPolicy(opts.TPS, src(4)),
		Sparkle:   NewSparklePolicy(opts.TPS, src(5)),
		byName:    make(map[string]*particle.Driver, len(Layers)),
	}

	surface := func(name string) particle.Surface {
		if surfaces == nil {
			return nil
		}
		return surfaces(name)
	}
	e.add(LayerAmbient, opts.Ceilings.Ambient, e.Ambient, surface)
	e.add(LayerConfetti, opts.Ceilings.Confetti, e.Confetti, surface)
	e.add(LayerSparkle, opts.Ceilings.Sparkle, e.Sparkle, surface)
	e.add(LayerTrail, opts.Ceilings.Trail, e.Trail, surface)
	e.add(LayerFairyDust, opts.Ceilings.FairyDust, e.FairyDust, surface)
	return e
}

func (e *Engine) add(name string, ceiling int, sp particle.Spawner, surface func(string) particle.Surface) {
	s := surface(name)
	if s == nil {
		log.Printf("[Effects] no surface for %s layer, simulating only", name)
	}
	d := particle.NewDriver(name, particle.NewPool(ceiling), sp, s)
	e.drivers = append(e.drivers, d)
	e.byName[name] = d
}

// Resize re-reads the viewport. The ambient layer is seeded the first time
// a non-empty viewport is seen, and again whenever its pool ran dry.
func (e *Engine) Resize(width, height int) {
	e.Ambient.Resize(float64(width), float64(height))
	e.byName[LayerAmbient].Inspect(func(pool *particle.Pool, _ particle.Surface) {
		if e.seeded && pool.Len() > 0 {
			return
		}
		if n := e.Ambient.Seed(pool); n > 0 {
			e.seeded = true
			log.Printf("[Effects] seeded %d ambient particles for %dx%d", n, width, height)
		}
	})
}

// Update runs the spawn and step phase of every driver.
func (e *Engine) Update() error {
	var g errgroup.Group
	for _, d := range e.drivers {
		g.Go(func() error {
			d.Advance()
			return nil
		})
	}
	return g.Wait()
}

// Present clears and redraws every layer.
func (e *Engine) Present() {
	for _, d := range e.drivers {
		d.Present()
	}
}

func (e *Engine) Driver(layer string) *particle.Driver {
	return e.byName[layer]
}

func (e *Engine) Drivers() []*particle.Driver {
	return e.drivers
}

// Running reports whether any driver is still live.
func (e *Engine) Running() bool {
	for _, d := range e.drivers {
		if d.Running() {
			return true
		}
	}
	return false
}

// Close stops every driver.
func (e *Engine) Close() {
	for _, d := range e.drivers {
		d.Stop()
	}
}
