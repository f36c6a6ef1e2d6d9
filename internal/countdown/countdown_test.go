package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var target = time.Date(2025, time.May, 17, 16, 0, 0, 0, time.UTC)

func TestRemaining(t *testing.T) {
	now := target.Add(-(3*day + 4*time.Hour + 5*time.Minute + 6*time.Second + 700*time.Millisecond))
	p := Remaining(now, target)
	assert.Equal(t, Parts{Days: 3, Hours: 4, Minutes: 5, Seconds: 6}, p)
	assert.Equal(t, "3d 04h 05m 06s", p.Label())
}

func TestRemainingAtAndAfterTarget(t *testing.T) {
	assert.Equal(t, Parts{}, Remaining(target, target))

	p := Remaining(target.Add(time.Millisecond), target)
	assert.True(t, p.Done)
	assert.Zero(t, p.Days+p.Hours+p.Minutes+p.Seconds)
	assert.Equal(t, "It's Party Time!", p.Label())
}

func TestTickerRecomputesOncePerSecond(t *testing.T) {
	tk := NewTicker(target)
	now := target.Add(-10 * time.Second)

	p, changed := tk.Update(now)
	assert.True(t, changed)
	assert.Equal(t, 10, p.Seconds)

	p, changed = tk.Update(now.Add(500 * time.Millisecond))
	assert.False(t, changed)
	assert.Equal(t, 10, p.Seconds)

	p, changed = tk.Update(now.Add(time.Second))
	assert.True(t, changed)
	assert.Equal(t, 9, p.Seconds)
}
