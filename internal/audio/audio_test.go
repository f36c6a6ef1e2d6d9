package audio

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaderInterpolates(t *testing.T) {
	var f Fader
	now := time.Unix(100, 0)
	f.Start(0, 0.5, now, 1500*time.Millisecond)
	assert.True(t, f.Active())

	v, done := f.Value(now.Add(750 * time.Millisecond))
	assert.False(t, done)
	assert.InDelta(t, 0.25, v, 1e-9)

	v, done = f.Value(now.Add(1500 * time.Millisecond))
	assert.True(t, done)
	assert.Equal(t, 0.5, v)
	assert.False(t, f.Active())

	v, done = f.Value(now)
	assert.True(t, done)
	assert.Equal(t, 0.5, v)
}

func TestFaderZeroDuration(t *testing.T) {
	var f Fader
	f.Start(0.4, 0, time.Unix(0, 0), 0)
	v, done := f.Value(time.Unix(0, 0))
	assert.True(t, done)
	assert.Zero(t, v)
}

func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func TestLevelTap(t *testing.T) {
	tap := NewLevelTap(constant(0.5), 64)
	assert.Zero(t, tap.Level(32))

	buf := make([][2]float64, 100)
	n, ok := tap.Stream(buf)
	assert.Equal(t, 100, n)
	assert.True(t, ok)
	assert.Equal(t, 0.5, buf[99][0])

	assert.InDelta(t, math.Pow(0.5, 0.3), tap.Level(32), 1e-9)
	assert.InDelta(t, math.Pow(0.5, 0.3), tap.Level(1000), 1e-9)
	assert.NoError(t, tap.Err())

	tap.Reset()
	assert.Zero(t, tap.Level(32))
}

func TestDisabledPlayerIsNoop(t *testing.T) {
	p := NewPlayer(Options{})
	now := time.Now()

	assert.False(t, p.Enabled())
	assert.False(t, p.Toggle(now))
	assert.False(t, p.Playing())
	p.Update(now)
	p.PlaySFX(SoundHit, 0.2)
	assert.Zero(t, p.Level())
	assert.Zero(t, p.Volume())
	p.Close()
}

func TestDecodeRejectsUnknownExtension(t *testing.T) {
	_, _, _, err := decode(filepath.Join(t.TempDir(), "song.ogg"))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, _, _, err = decode(filepath.Join(t.TempDir(), "missing.wav"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupported)
}
