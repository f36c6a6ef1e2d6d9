package particle

// Pool is the live set of particles of one family. Membership order only
// matters for paint layering.
type Pool struct {
	members []Particle
	ceiling int
}

// NewPool creates a pool. A positive ceiling is a soft cap: Add drops new
// particles while the pool is full.
func NewPool(ceiling int) *Pool {
	return &Pool{ceiling: ceiling}
}

// Add appends p. It returns false when the pool is at its ceiling.
func (pl *Pool) Add(p Particle) bool {
	if pl.Full() {
		return false
	}
	pl.members = append(pl.members, p)
	return true
}

// Fill appends p even past the ceiling. Only the initial seeding uses it;
// the ceiling still applies to everything spawned afterwards.
func (pl *Pool) Fill(p Particle) {
	pl.members = append(pl.members, p)
}

func (pl *Pool) Full() bool {
	return pl.ceiling > 0 && len(pl.members) >= pl.ceiling
}

// StepAndPrune steps every member exactly once and removes the ones that
// expired in the same pass. Survivors keep their relative order.
func (pl *Pool) StepAndPrune() (removed int) {
	live := 0
	for i := range pl.members {
		pl.members[i].Step()
		if pl.members[i].Expired() {
			continue
		}
		if live != i {
			pl.members[live] = pl.members[i]
		}
		live++
	}
	removed = len(pl.members) - live
	pl.members = pl.members[:live]
	return removed
}

func (pl *Pool) Render(s Surface) {
	if s == nil {
		return
	}
	for i := range pl.members {
		pl.members[i].Render(s)
	}
}

func (pl *Pool) Len() int { return len(pl.members) }

func (pl *Pool) Cap() int { return pl.ceiling }

func (pl *Pool) Reset() { pl.members = pl.members[:0] }

// Each calls fn for every live particle. fn must not retain the pointer.
func (pl *Pool) Each(fn func(p *Particle)) {
	for i := range pl.members {
		fn(&pl.members[i])
	}
}
