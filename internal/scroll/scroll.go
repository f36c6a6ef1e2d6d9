// Package scroll drives the virtual page: an eased scroll offset and the
// effects that key off it.
package scroll

import (
	"github.com/charmbracelet/harmonica"
)

// Scroller eases the visible offset toward a target offset with a
// critically damped spring.
type Scroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64

	page     float64
	viewport float64
}

func NewScroller(tps int, frequency, damping float64) *Scroller {
	return &Scroller{spring: harmonica.NewSpring(harmonica.FPS(tps), frequency, damping)}
}

// SetBounds sets the full page height and the visible height and clamps
// both offsets to the new range.
func (s *Scroller) SetBounds(page, viewport float64) {
	s.page = page
	s.viewport = viewport
	s.target = s.clamp(s.target)
	s.pos = s.clamp(s.pos)
}

func (s *Scroller) Max() float64 {
	return max(s.page-s.viewport, 0)
}

func (s *Scroller) clamp(y float64) float64 {
	return min(max(y, 0), s.Max())
}

func (s *Scroller) ScrollBy(dy float64) { s.target = s.clamp(s.target + dy) }
func (s *Scroller) ScrollTo(y float64)  { s.target = s.clamp(y) }

// Update advances the spring one tick and returns the visible offset.
func (s *Scroller) Update() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if d := s.pos - s.target; d < 0.5 && d > -0.5 && s.vel < 0.5 && s.vel > -0.5 {
		s.pos, s.vel = s.target, 0
	}
	s.pos = s.clamp(s.pos)
	return s.pos
}

func (s *Scroller) Offset() float64 { return s.pos }
func (s *Scroller) Target() float64 { return s.target }

// Progress is the scrolled fraction of the page in [0, 1]. A page that
// fits the viewport reports 0.
func (s *Scroller) Progress() float64 {
	m := s.Max()
	if m == 0 {
		return 0
	}
	return min(max(s.pos/m, 0), 1)
}

// Percent is Progress in percent, as the indicator labels it.
func (s *Scroller) Percent() float64 { return s.Progress() * 100 }

// FairyScale is the scale of the scroll indicator fairy at progress p.
func FairyScale(p float64) float64 { return 0.7 + p*0.6 }

// FairyOpacity is the opacity of the scroll indicator fairy at progress p.
func FairyOpacity(p float64) float64 { return min(1, 0.5+p) }

// Parallax is the vertical offset of a decoration moving at speed.
func Parallax(scroll, speed float64) float64 { return scroll * speed * 0.1 }
