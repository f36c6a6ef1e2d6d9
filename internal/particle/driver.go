package particle

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Spawner decides, once per tick, which particles a pool gains. Triggers
// that arrived since the previous tick are flushed here.
type Spawner interface {
	Spawn(pool *Pool)
}

// SpawnerFunc adapts a function to Spawner.
type SpawnerFunc func(pool *Pool)

func (f SpawnerFunc) Spawn(pool *Pool) { f(pool) }

// Driver runs the per-frame loop of one pool: spawn, step and prune, clear
// the owned surface, render. Ticks of one driver never overlap.
type Driver struct {
	name    string
	pool    *Pool
	spawner Spawner
	surface Surface

	mu      sync.Mutex
	stopped atomic.Bool
	frames  atomic.Uint64
}

// NewDriver binds a pool to its spawner and surface. Either of them may be
// nil: without a spawner the pool only decays, without a surface nothing is
// drawn.
func NewDriver(name string, pool *Pool, spawner Spawner, surface Surface) *Driver {
	return &Driver{
		name:    name,
		pool:    pool,
		spawner: spawner,
		surface: surface,
	}
}

func (d *Driver) Name() string { return d.name }

func (d *Driver) Pool() *Pool { return d.pool }

func (d *Driver) Surface() Surface { return d.surface }

// Frames is the number of completed Advance calls.
func (d *Driver) Frames() uint64 { return d.frames.Load() }

// Advance runs the spawn and step phases. It returns false once the driver
// is stopped.
func (d *Driver) Advance() bool {
	if d.stopped.Load() {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.spawner != nil {
		d.spawner.Spawn(d.pool)
	}
	d.pool.StepAndPrune()
	d.frames.Add(1)
	return true
}

// Present clears the surface and renders the survivors of the last step.
func (d *Driver) Present() {
	if d.stopped.Load() || d.surface == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.surface.Clear()
	d.pool.Render(d.surface)
}

// Tick is one full frame.
func (d *Driver) Tick() bool {
	if !d.Advance() {
		return false
	}
	d.Present()
	return true
}

// Run ticks once per value received from frames until ctx is cancelled,
// frames is closed or Stop is called.
func (d *Driver) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			d.Stop()
			return ctx.Err()
		case _, ok := <-frames:
			if !ok || !d.Tick() {
				return nil
			}
		}
	}
}

// Inspect calls fn with the driver's lock held, so fn sees a complete
// frame and may reshape the pool or surface between ticks. fn must not
// call back into the driver.
func (d *Driver) Inspect(fn func(pool *Pool, s Surface)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.pool, d.surface)
}

// Stop cancels the loop. The next tick exits without doing work.
func (d *Driver) Stop() {
	d.stopped.Store(true)
}

func (d *Driver) Running() bool {
	return !d.stopped.Load()
}
