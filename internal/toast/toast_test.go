package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

func TestScheduledToastLifecycle(t *testing.T) {
	s := NewStack(60)
	t0 := time.Unix(0, 0)
	s.Schedule("Click the music button!", t0.Add(2*time.Second), 5*time.Second)

	s.Update(t0)
	assert.Empty(t, s.Visible(t0))
	assert.Equal(t, 1, s.Len())

	now := t0.Add(2 * time.Second)
	for range 120 {
		s.Update(now)
		now = now.Add(frame)
	}
	v := s.Visible(now)
	require.Len(t, v, 1)
	assert.Equal(t, "Click the music button!", v[0].Text)
	assert.Less(t, v[0].Offset, 1.0)
	assert.Greater(t, v[0].Alpha, 0.9)

	s.Update(t0.Add(7*time.Second + Linger))
	assert.Zero(t, s.Len())
}

func TestToastSlidesOutAfterEnd(t *testing.T) {
	s := NewStack(60)
	t0 := time.Unix(0, 0)
	s.Show("Message Sent!", t0, time.Second)

	now := t0
	for range 60 {
		s.Update(now)
		now = now.Add(frame)
	}
	in := s.Visible(now)[0].Offset

	for range 25 {
		s.Update(now)
		now = now.Add(frame)
	}
	require.Equal(t, 1, s.Len())
	assert.Greater(t, s.Visible(now)[0].Offset, in)
}
