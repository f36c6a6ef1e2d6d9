package gift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOpenRevealsAfterDelay(t *testing.T) {
	b := New(Teddy, "Happy Birthday!", "Family")
	now := time.Unix(1000, 0)

	assert.True(t, b.Open(now))
	assert.Equal(t, Opening, b.State())
	assert.False(t, b.Open(now), "second open while opening")

	assert.False(t, b.Update(now.Add(RevealDelay-time.Millisecond)))
	assert.Equal(t, Opening, b.State())
	assert.InDelta(t, 0.5, b.Progress(now.Add(RevealDelay/2)), 1e-9)

	assert.True(t, b.Update(now.Add(RevealDelay)))
	assert.Equal(t, Revealed, b.State())
	assert.False(t, b.Update(now.Add(2*RevealDelay)))
	assert.Equal(t, 1.0, b.Progress(now))
}

func TestReset(t *testing.T) {
	b := New(Crown, "", "")
	now := time.Unix(0, 0)
	b.Open(now)
	b.Update(now.Add(RevealDelay))

	b.Reset()
	assert.Equal(t, Closed, b.State())
	assert.Zero(t, b.Progress(now))
	assert.True(t, b.Open(now))
}

func TestSelect(t *testing.T) {
	b := New("pony", "", "")
	assert.Equal(t, Teddy, b.Kind)

	assert.True(t, b.Select(" Wand "))
	assert.Equal(t, Wand, b.Kind)
	assert.False(t, b.Select("dragon"))
	assert.Equal(t, Wand, b.Kind)
	assert.Equal(t, "A Fairy Wand", b.Kind.Label())
}

func TestCustomizeKeepsBlankFields(t *testing.T) {
	b := New(Teddy, "Happy Birthday!", "Family")

	b.Customize("  ", "Grandma")
	assert.Equal(t, "Happy Birthday!", b.Message)
	assert.Equal(t, "Grandma", b.From)

	b.Customize("You're magic", "")
	assert.Equal(t, "You're magic", b.Message)
	assert.Equal(t, "Grandma", b.From)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "opening", Opening.String())
	assert.Equal(t, "State(7)", State(7).String())
}
