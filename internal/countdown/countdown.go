// Package countdown splits the time left until the party into display
// fields.
package countdown

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Parts is the remaining time broken into whole days, hours, minutes and
// seconds. Done is set once the target has passed; all fields are then 0.
type Parts struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Done    bool
}

// Remaining computes the parts left from now until target.
func Remaining(now, target time.Time) Parts {
	left := target.Sub(now)
	if left < 0 {
		return Parts{Done: true}
	}
	return Parts{
		Days:    int(left / day),
		Hours:   int(left % day / time.Hour),
		Minutes: int(left % time.Hour / time.Minute),
		Seconds: int(left % time.Minute / time.Second),
	}
}

// Label formats the parts the way the countdown cards show them.
func (p Parts) Label() string {
	if p.Done {
		return "It's Party Time!"
	}
	return fmt.Sprintf("%dd %02dh %02dm %02ds", p.Days, p.Hours, p.Minutes, p.Seconds)
}

// Ticker recomputes the parts at most once per second, as the countdown
// only changes that often.
type Ticker struct {
	target time.Time
	last   time.Time
	parts  Parts
}

func NewTicker(target time.Time) *Ticker {
	return &Ticker{target: target}
}

// Update returns the current parts and whether they were recomputed.
func (t *Ticker) Update(now time.Time) (Parts, bool) {
	if !t.last.IsZero() && now.Sub(t.last) < time.Second {
		return t.parts, false
	}
	t.last = now
	t.parts = Remaining(now, t.target)
	return t.parts, true
}

func (t *Ticker) Target() time.Time { return t.target }
