// Package gift is the gift box micro-interaction: a closed box that opens
// on click and reveals a message shortly after.
package gift

import (
	"fmt"
	"strings"
	"time"
)

// RevealDelay is how long after opening the message appears.
const RevealDelay = 1500 * time.Millisecond

type State int

const (
	Closed State = iota
	Opening
	Revealed
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Revealed:
		return "revealed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Kind string

const (
	Teddy Kind = "teddy"
	Crown Kind = "crown"
	Wand  Kind = "wand"
)

var Kinds = []Kind{Teddy, Crown, Wand}

// Label is the text shown inside the box once revealed.
func (k Kind) Label() string {
	switch k {
	case Teddy:
		return "A Magical Teddy Bear"
	case Crown:
		return "A Sparkling Tiara"
	case Wand:
		return "A Fairy Wand"
	}
	return string(k)
}

func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}

type Box struct {
	Kind    Kind
	Message string
	From    string

	state    State
	openedAt time.Time
}

func New(kind Kind, message, from string) *Box {
	if _, ok := ParseKind(string(kind)); !ok {
		kind = Teddy
	}
	return &Box{Kind: kind, Message: message, From: from}
}

func (b *Box) State() State { return b.state }

// Open starts the opening animation. It reports false when the box is not
// closed, so callers fire confetti only once per opening.
func (b *Box) Open(now time.Time) bool {
	if b.state != Closed {
		return false
	}
	b.state = Opening
	b.openedAt = now
	return true
}

// Update moves Opening to Revealed once RevealDelay has elapsed and
// reports whether that happened on this call.
func (b *Box) Update(now time.Time) bool {
	if b.state != Opening || now.Sub(b.openedAt) < RevealDelay {
		return false
	}
	b.state = Revealed
	return true
}

// Progress is the opening animation position in [0, 1].
func (b *Box) Progress(now time.Time) float64 {
	switch b.state {
	case Closed:
		return 0
	case Revealed:
		return 1
	}
	p := float64(now.Sub(b.openedAt)) / float64(RevealDelay)
	return min(max(p, 0), 1)
}

func (b *Box) Reset() {
	b.state = Closed
	b.openedAt = time.Time{}
}

// Select swaps the gift inside; unknown kinds are ignored.
func (b *Box) Select(kind string) bool {
	k, ok := ParseKind(kind)
	if !ok {
		return false
	}
	b.Kind = k
	return true
}

// Customize replaces the message and sender; blank values keep the
// current text.
func (b *Box) Customize(message, from string) {
	if m := strings.TrimSpace(message); m != "" {
		b.Message = m
	}
	if f := strings.TrimSpace(from); f != "" {
		b.From = f
	}
}
