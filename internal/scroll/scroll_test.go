package scroll

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settle(s *Scroller) {
	for range 600 {
		s.Update()
	}
}

func TestScrollerEasesToTarget(t *testing.T) {
	s := NewScroller(60, 6, 1)
	s.SetBounds(2000, 800)

	s.ScrollBy(300)
	first := s.Update()
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 300.0)

	settle(s)
	assert.Equal(t, 300.0, s.Offset())
	assert.InDelta(t, 25.0, s.Percent(), 1e-9)
}

func TestScrollerClamps(t *testing.T) {
	s := NewScroller(60, 6, 1)
	s.SetBounds(2000, 800)

	s.ScrollBy(-50)
	assert.Equal(t, 0.0, s.Target())
	s.ScrollTo(5000)
	assert.Equal(t, 1200.0, s.Target())
	settle(s)
	assert.Equal(t, 1.0, s.Progress())

	s.SetBounds(1000, 800)
	assert.Equal(t, 200.0, s.Offset())
}

func TestShortPageHasNoProgress(t *testing.T) {
	s := NewScroller(60, 6, 1)
	s.SetBounds(500, 800)
	s.ScrollBy(100)
	settle(s)
	assert.Zero(t, s.Progress())
}

func TestFairyAndParallax(t *testing.T) {
	assert.InDelta(t, 0.7, FairyScale(0), 1e-9)
	assert.InDelta(t, 1.3, FairyScale(1), 1e-9)
	assert.InDelta(t, 0.5, FairyOpacity(0), 1e-9)
	assert.Equal(t, 1.0, FairyOpacity(0.8))
	assert.InDelta(t, -30.0, Parallax(200, -1.5), 1e-9)
}

func TestRevealerRevealsOnceAndStays(t *testing.T) {
	r := NewRevealer(4)
	near := r.Add(100, 400)
	far := r.Add(1500, 400)

	r.Update(0, 800)
	assert.True(t, r.Revealed(near))
	assert.False(t, r.Revealed(far))
	assert.InDelta(t, 0.25, r.Alpha(near), 1e-9)
	assert.InDelta(t, 15.0, r.Rise(near), 1e-9)

	// 30px of the far section inside the shrunken viewport is under 10%.
	r.Update(830, 800)
	assert.False(t, r.Revealed(far))
	r.Update(850, 800)
	assert.True(t, r.Revealed(far))

	r.Update(0, 800)
	r.Update(0, 800)
	assert.True(t, r.Revealed(far))
	assert.Equal(t, 1.0, r.Alpha(near))
}

func TestCursorOffset(t *testing.T) {
	off := CursorOffset(mgl64.Vec2{100, 500}, 1000, 800, 10)
	assert.InDelta(t, 40.0, off.X(), 1e-9)
	assert.InDelta(t, -10.0, off.Y(), 1e-9)

	assert.Equal(t, CursorOffset(mgl64.Vec2{}, 100, 100, 10), CursorOffset(mgl64.Vec2{}, 100, 100, 0))
}

func TestFloatersStayNearAnchor(t *testing.T) {
	f := NewFloaters(7)
	f.Add(Floater{Anchor: mgl64.Vec2{200, 300}, Glyph: "*"}, rand.New(rand.NewPCG(1, 2)))
	require.Equal(t, 1, f.Len())
	assert.Equal(t, 10.0, f.At(0).Speed)

	center := mgl64.Vec2{500, 400}
	for tick := range uint64(200) {
		p := f.Position(0, tick, center, 1000, 800, 0)
		assert.LessOrEqual(t, p.Sub(f.At(0).Anchor).Len(), 3*wobbleAmplitude)
	}
}
