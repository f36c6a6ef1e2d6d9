package particle

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	kind string
	x, y float64
	size float64
	clr  color.NRGBA
}

type recordingSurface struct {
	clears int
	calls  []drawCall
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.calls = s.calls[:0]
}

func (s *recordingSurface) Circle(x, y, r float64, clr color.NRGBA) {
	s.calls = append(s.calls, drawCall{kind: "circle", x: x, y: y, size: r, clr: clr})
}

func (s *recordingSurface) Star(x, y, outer, _ float64, _ int, _ float64, clr color.NRGBA) {
	s.calls = append(s.calls, drawCall{kind: "star", x: x, y: y, size: outer, clr: clr})
}

func (s *recordingSurface) Rect(x, y, w, _ float64, _ float64, clr color.NRGBA) {
	s.calls = append(s.calls, drawCall{kind: "rect", x: x, y: y, size: w, clr: clr})
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

var dust = Family{
	Name:    "dust",
	Palette: []color.NRGBA{{R: 247, G: 89, B: 171, A: 255}},
	Shape:   ShapeStar,
	Ambient: Motion{
		Size:      Range{1, 4},
		Speed:     Range{0.5, 2.5},
		Life:      Fixed(1),
		MaxLife:   1,
		Decrement: Range{0.01, 0.06},
	},
	Gravity: 0.05,
	Damping: 0.99,
}

func TestStepMovesByVelocityAndDecrementsLife(t *testing.T) {
	p := Particle{
		Pos:       mgl64.Vec2{10, 20},
		Vel:       mgl64.Vec2{1.5, -2},
		Life:      100,
		MaxLife:   300,
		Decrement: 1,
	}
	p.Step()

	assert.Equal(t, mgl64.Vec2{11.5, 18}, p.Pos)
	assert.Equal(t, 99.0, p.Life)
}

func TestStepAppliesGravityAndDamping(t *testing.T) {
	p := Particle{
		Pos:       mgl64.Vec2{0, 0},
		Vel:       mgl64.Vec2{1, 1},
		Life:      1,
		MaxLife:   1,
		Decrement: 0.05,
		gravity:   0.05,
		damping:   0.99,
	}
	p.Step()

	assert.Equal(t, mgl64.Vec2{1, 1}, p.Pos, "position integrates the pre-force velocity")
	assert.InDelta(t, 0.99, p.Vel.X(), 1e-12)
	assert.InDelta(t, 1.05*0.99, p.Vel.Y(), 1e-12)
	assert.InDelta(t, 0.95, p.Life, 1e-12)
}

func TestExpiredExactlyAtZero(t *testing.T) {
	p := Particle{Life: 1, MaxLife: 10, Decrement: 1}
	assert.False(t, p.Expired())
	p.Step()
	assert.True(t, p.Expired())

	p = Particle{Life: 0.5, MaxLife: 1, Decrement: 1}
	p.Step()
	assert.True(t, p.Expired())
}

func TestOpacityIsDerivedAndClamped(t *testing.T) {
	p := Particle{Life: 150, MaxLife: 300}
	assert.Equal(t, 0.5, p.Opacity())

	p.Life = 400
	assert.Equal(t, 1.0, p.Opacity())

	p.Life = -3
	assert.Equal(t, 0.0, p.Opacity())
}

func TestRenderHalfLifeAtHalfOpacity(t *testing.T) {
	s := &recordingSurface{}
	p := Particle{
		Pos:     mgl64.Vec2{5, 6},
		Size:    3,
		Color:   color.NRGBA{R: 255, G: 173, B: 210, A: 200},
		Life:    25,
		MaxLife: 50,
	}
	p.Render(s)

	require.Len(t, s.calls, 1)
	assert.Equal(t, "circle", s.calls[0].kind)
	assert.Equal(t, uint8(100), s.calls[0].clr.A)
	assert.Equal(t, 3.0, s.calls[0].size)
}

func TestRenderExpiredIssuesNoDrawCalls(t *testing.T) {
	s := &recordingSurface{}
	p := Particle{Size: 3, Color: color.NRGBA{A: 255}, Life: 0, MaxLife: 50}
	p.Render(s)
	assert.Empty(t, s.calls)

	p.Life = -1
	p.Render(s)
	assert.Empty(t, s.calls)
}

func TestRenderHiddenDuringDelay(t *testing.T) {
	s := &recordingSurface{}
	p := Particle{Size: 3, Color: color.NRGBA{A: 255}, Life: 10, MaxLife: 10, Decrement: 1, Delay: 2}

	p.Render(s)
	assert.Empty(t, s.calls)
	p.Step()
	p.Render(s)
	assert.Empty(t, s.calls)
	p.Step()
	p.Render(s)
	assert.Len(t, s.calls, 1)
	assert.Equal(t, 8.0, p.Life, "life keeps counting down while hidden")
}

func TestStepHoldsStillWhileHidden(t *testing.T) {
	p := Particle{Pos: mgl64.Vec2{10, 20}, Vel: mgl64.Vec2{1, 3}, Life: 10, MaxLife: 10, Decrement: 1, Delay: 3, gravity: 0.5, Spin: 0.1}
	for p.Hidden() {
		p.Step()
	}
	assert.Equal(t, mgl64.Vec2{10, 20}, p.Pos, "first visible frame is at the spawn point")
	assert.Equal(t, mgl64.Vec2{1, 3}, p.Vel)
	assert.Equal(t, 0.0, p.Rotation)
	assert.Equal(t, 7.0, p.Life)

	p.Step()
	assert.Equal(t, mgl64.Vec2{11, 23}, p.Pos)
}

func TestRenderShrinkScalesSize(t *testing.T) {
	s := &recordingSurface{}
	p := Particle{Size: 8, Color: color.NRGBA{A: 255}, Life: 15, MaxLife: 60, shrink: true}
	p.Render(s)
	require.Len(t, s.calls, 1)
	assert.Equal(t, 2.0, s.calls[0].size)
}

func TestNewSamplesWithinFamilyRanges(t *testing.T) {
	rng := testRand()
	for i := 0; i < 200; i++ {
		p := New(&dust, 100, 100, false, rng)
		assert.GreaterOrEqual(t, p.Size, 1.0)
		assert.Less(t, p.Size, 4.0)
		speed := p.Vel.Len()
		assert.GreaterOrEqual(t, speed, 0.5-1e-9)
		assert.Less(t, speed, 2.5+1e-9)
		assert.GreaterOrEqual(t, p.Decrement, 0.01)
		assert.Less(t, p.Decrement, 0.06)
		assert.Equal(t, 1.0, p.Life)
		assert.Equal(t, ShapeStar, p.Shape)
	}
}

func TestNewForcedUsesForcedMotion(t *testing.T) {
	f := Family{
		Ambient: Motion{Size: Range{1, 4}, Life: Range{100, 300}, MaxLife: 300},
		Forced:  Motion{Size: Range{2, 6}, Life: Range{30, 50}, MaxLife: 50},
	}
	rng := testRand()
	for i := 0; i < 100; i++ {
		p := New(&f, 0, 0, true, rng)
		assert.GreaterOrEqual(t, p.Life, 30.0)
		assert.Less(t, p.Life, 50.0)
		assert.Equal(t, 50.0, p.MaxLife)

		a := New(&f, 0, 0, false, rng)
		assert.GreaterOrEqual(t, a.Life, 100.0)
		assert.Equal(t, 300.0, a.MaxLife)
	}
}

func TestNewJitterStaysInBox(t *testing.T) {
	f := dust
	f.Jitter = 5
	rng := testRand()
	for i := 0; i < 100; i++ {
		p := New(&f, 50, 60, false, rng)
		assert.InDelta(t, 50, p.Pos.X(), 5)
		assert.InDelta(t, 60, p.Pos.Y(), 5)
	}
}

func TestStarPointsStartStraightUp(t *testing.T) {
	pts := StarPoints(10, 10, 4, 2, 5, 0)
	require.Len(t, pts, 10)
	assert.InDelta(t, 10, pts[0].X(), 1e-9)
	assert.InDelta(t, 6, pts[0].Y(), 1e-9)
	assert.InDelta(t, 2, pts[1].Sub(mgl64.Vec2{10, 10}).Len(), 1e-9)
}

func TestRectPointsRotation(t *testing.T) {
	pts := RectPoints(0, 0, 2, 2, 0)
	assert.Equal(t, mgl64.Vec2{-1, -1}, pts[0])
	assert.Equal(t, mgl64.Vec2{1, 1}, pts[2])
}
