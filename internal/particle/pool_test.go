package particle

import (
	"context"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lived(x, life float64) Particle {
	return Particle{
		Pos:       mgl64.Vec2{x, 0},
		Size:      1,
		Color:     color.NRGBA{A: 255},
		Life:      life,
		MaxLife:   10,
		Decrement: 1,
	}
}

func positions(pl *Pool) []float64 {
	var xs []float64
	pl.Each(func(p *Particle) { xs = append(xs, p.Pos.X()) })
	return xs
}

func TestPoolStepAndPruneRemovesExpiredKeepsOrder(t *testing.T) {
	pl := NewPool(0)
	pl.Add(lived(1, 5))
	pl.Add(lived(2, 1))
	pl.Add(lived(3, 3))
	pl.Add(lived(4, 1))
	pl.Add(lived(5, 2))

	removed := pl.StepAndPrune()

	assert.Equal(t, 2, removed)
	assert.Equal(t, []float64{1, 3, 5}, positions(pl))
	pl.Each(func(p *Particle) {
		assert.False(t, p.Expired())
	})
}

func TestPoolStepAndPruneSecondPassStepsOnce(t *testing.T) {
	pl := NewPool(0)
	pl.Add(lived(1, 5))
	pl.Add(lived(2, 8))
	pl.StepAndPrune()

	var before []float64
	pl.Each(func(p *Particle) { before = append(before, p.Life) })

	removed := pl.StepAndPrune()

	assert.Zero(t, removed)
	require.Equal(t, 2, pl.Len())
	i := 0
	pl.Each(func(p *Particle) {
		assert.Equal(t, before[i]-1, p.Life, "each member is stepped exactly once per pass")
		i++
	})
}

func TestPoolEveryMemberExpiresEventually(t *testing.T) {
	pl := NewPool(0)
	for i := 0; i < 20; i++ {
		pl.Add(lived(float64(i), float64(i%7+1)))
	}
	for i := 0; i < 7; i++ {
		pl.StepAndPrune()
	}
	assert.Zero(t, pl.Len())
}

func TestPoolCeilingDropsNewParticles(t *testing.T) {
	pl := NewPool(2)
	assert.True(t, pl.Add(lived(1, 5)))
	assert.True(t, pl.Add(lived(2, 5)))
	assert.False(t, pl.Add(lived(3, 5)))
	assert.True(t, pl.Full())
	assert.Equal(t, 2, pl.Len())
	assert.Equal(t, 2, pl.Cap())
}

func TestPoolFillPassesCeiling(t *testing.T) {
	pl := NewPool(1)
	pl.Fill(lived(1, 5))
	pl.Fill(lived(2, 5))
	assert.Equal(t, 2, pl.Len())
	assert.False(t, pl.Add(lived(3, 5)))
}

func TestPoolRenderDrawsEveryMember(t *testing.T) {
	pl := NewPool(0)
	pl.Add(lived(1, 5))
	pl.Add(lived(2, 5))
	s := &recordingSurface{}
	pl.Render(s)
	assert.Len(t, s.calls, 2)

	pl.Reset()
	s.Clear()
	pl.Render(s)
	assert.Empty(t, s.calls)
}

func TestDriverTickOrder(t *testing.T) {
	pl := NewPool(0)
	s := &recordingSurface{}
	spawned := 0
	d := NewDriver("test", pl, SpawnerFunc(func(p *Pool) {
		spawned++
		p.Add(lived(float64(spawned), 1))
	}), s)

	require.True(t, d.Tick())

	// the particle spawned this tick was stepped to zero life before render
	assert.Zero(t, pl.Len())
	assert.Empty(t, s.calls)
	assert.Equal(t, 1, s.clears)
	assert.Equal(t, uint64(1), d.Frames())
}

func TestDriverPresentRendersSurvivors(t *testing.T) {
	pl := NewPool(0)
	pl.Add(lived(1, 3))
	s := &recordingSurface{}
	d := NewDriver("test", pl, nil, s)

	d.Tick()
	require.Len(t, s.calls, 1)
	assert.Equal(t, uint8(51), s.calls[0].clr.A)
}

func TestDriverStopEndsTicks(t *testing.T) {
	pl := NewPool(0)
	s := &recordingSurface{}
	d := NewDriver("test", pl, nil, s)

	assert.True(t, d.Running())
	d.Stop()
	assert.False(t, d.Running())
	assert.False(t, d.Tick())
	assert.Zero(t, s.clears)
	assert.Zero(t, d.Frames())
}

func TestDriverWithoutSurfaceStillAdvances(t *testing.T) {
	pl := NewPool(0)
	pl.Add(lived(1, 2))
	d := NewDriver("headless", pl, nil, nil)

	assert.True(t, d.Tick())
	assert.True(t, d.Tick())
	assert.Zero(t, pl.Len())
}

func TestDriverRunExitsOnCancel(t *testing.T) {
	pl := NewPool(0)
	d := NewDriver("run", pl, nil, &recordingSurface{})
	frames := make(chan time.Time)
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	var err error
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = d.Run(ctx, frames)
	}()

	frames <- time.Now()
	frames <- time.Now()
	cancel()
	wg.Wait()

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, d.Running())
	assert.Equal(t, uint64(2), d.Frames())
}

func TestDriverRunExitsWhenFramesClose(t *testing.T) {
	d := NewDriver("run", NewPool(0), nil, nil)
	frames := make(chan time.Time, 3)
	frames <- time.Now()
	frames <- time.Now()
	close(frames)

	err := d.Run(context.Background(), frames)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), d.Frames())
}

func TestDriverInspectSeesPoolAndSurface(t *testing.T) {
	pl := NewPool(0)
	s := &recordingSurface{}
	d := NewDriver("test", pl, nil, s)

	d.Inspect(func(pool *Pool, surface Surface) {
		assert.Same(t, pl, pool)
		assert.Equal(t, Surface(s), surface)
		pool.Add(Particle{Life: 1, MaxLife: 1, Decrement: 1})
	})
	assert.Equal(t, 1, pl.Len())
}
