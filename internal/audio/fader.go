package audio

import "time"

// Fader interpolates a volume linearly over a fixed duration.
type Fader struct {
	from, to float64
	start    time.Time
	dur      time.Duration
	active   bool
}

func (f *Fader) Start(from, to float64, now time.Time, dur time.Duration) {
	*f = Fader{from: from, to: to, start: now, dur: dur, active: true}
}

func (f *Fader) Active() bool { return f.active }

// Value returns the volume at now and whether the fade has finished. An
// inactive fader returns its last target.
func (f *Fader) Value(now time.Time) (float64, bool) {
	if !f.active {
		return f.to, true
	}
	if f.dur <= 0 || now.Sub(f.start) >= f.dur {
		f.active = false
		return f.to, true
	}
	p := float64(now.Sub(f.start)) / float64(f.dur)
	if p < 0 {
		p = 0
	}
	return f.from + (f.to-f.from)*p, false
}
