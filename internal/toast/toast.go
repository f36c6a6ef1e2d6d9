// Package toast keeps the short notifications that slide into view and
// leave after a while.
package toast

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// Slide is how far a toast travels while entering and leaving.
	Slide = 40.0
	// Linger is how long a hidden toast keeps sliding out before removal.
	Linger = 500 * time.Millisecond
)

type toast struct {
	text       string
	start, end time.Time
	offset     float64
	vel        float64
}

// View is a toast as drawn: Offset is the remaining slide in pixels.
type View struct {
	Text   string
	Offset float64
	Alpha  float64
}

type Stack struct {
	spring harmonica.Spring
	items  []*toast
}

func NewStack(tps int) *Stack {
	return &Stack{spring: harmonica.NewSpring(harmonica.FPS(tps), 8, 0.8)}
}

// Show displays text from now for d.
func (s *Stack) Show(text string, now time.Time, d time.Duration) {
	s.Schedule(text, now, d)
}

// Schedule displays text from at for d.
func (s *Stack) Schedule(text string, at time.Time, d time.Duration) {
	s.items = append(s.items, &toast{text: text, start: at, end: at.Add(d), offset: Slide})
}

// Update eases every toast one tick and drops the ones that finished.
func (s *Stack) Update(now time.Time) {
	kept := s.items[:0]
	for _, t := range s.items {
		if !now.Before(t.end.Add(Linger)) {
			continue
		}
		target := Slide
		if !now.Before(t.start) && now.Before(t.end) {
			target = 0
		}
		if !now.Before(t.start) {
			t.offset, t.vel = s.spring.Update(t.offset, t.vel, target)
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
}

// Visible lists the toasts on screen, oldest first.
func (s *Stack) Visible(now time.Time) []View {
	var out []View
	for _, t := range s.items {
		if now.Before(t.start) {
			continue
		}
		a := 1 - t.offset/Slide
		out = append(out, View{Text: t.text, Offset: t.offset, Alpha: min(max(a, 0), 1)})
	}
	return out
}

func (s *Stack) Len() int { return len(s.items) }
