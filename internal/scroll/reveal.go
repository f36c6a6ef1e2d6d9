package scroll

const (
	// RevealThreshold is the visible fraction that triggers a reveal.
	RevealThreshold = 0.1
	// RevealMargin shrinks the bottom of the viewport for reveal checks.
	RevealMargin = 100.0
	// RevealRise is the distance a section slides up while fading in.
	RevealRise = 20.0
)

type section struct {
	top, height float64
	revealed    bool
	alpha       float64
}

// Revealer fades page sections in the first time enough of them scrolls
// into view. Revealed sections never hide again.
type Revealer struct {
	sections []section
	step     float64
}

// NewRevealer fades sections in over fadeTicks ticks.
func NewRevealer(fadeTicks int) *Revealer {
	return &Revealer{step: 1 / float64(max(fadeTicks, 1))}
}

// Add registers a section at page offset top and returns its index.
func (r *Revealer) Add(top, height float64) int {
	r.sections = append(r.sections, section{top: top, height: height})
	return len(r.sections) - 1
}

// Update checks visibility against the viewport [scroll, scroll+viewport)
// and advances the fades.
func (r *Revealer) Update(scroll, viewport float64) {
	bottom := scroll + max(viewport-RevealMargin, 0)
	for i := range r.sections {
		s := &r.sections[i]
		if !s.revealed && s.height > 0 {
			visible := min(s.top+s.height, bottom) - max(s.top, scroll)
			if visible/s.height >= RevealThreshold {
				s.revealed = true
			}
		}
		if s.revealed && s.alpha < 1 {
			s.alpha = min(s.alpha+r.step, 1)
		}
	}
}

func (r *Revealer) Revealed(i int) bool { return r.sections[i].revealed }

// Alpha is the section opacity in [0, 1].
func (r *Revealer) Alpha(i int) float64 { return r.sections[i].alpha }

// Rise is the remaining upward slide of the section in pixels.
func (r *Revealer) Rise(i int) float64 { return (1 - r.sections[i].alpha) * RevealRise }

func (r *Revealer) Len() int { return len(r.sections) }
