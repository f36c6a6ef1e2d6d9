package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// LevelTap wraps a beep.Streamer and records the last N samples into a
// ring buffer so the renderer can pulse with recently played audio.
type LevelTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func NewLevelTap(src beep.Streamer, ringSize int) *LevelTap {
	return &LevelTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *LevelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex = (t.nextIndex + 1) % len(t.buffer)
		}
		t.filled = min(t.filled+n, len(t.buffer))
		t.mu.Unlock()
	}
	return n, ok
}

func (t *LevelTap) Err() error { return t.Source.Err() }

// Level is the compressed RMS of the last n recorded samples, in [0, 1]
// for normalized audio. It is 0 before anything played.
func (t *LevelTap) Level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, t.filled)
	if n == 0 {
		return 0
	}
	var sumSquares float64
	idx := t.nextIndex
	for range n {
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(n))
	// Compressed for a livelier pulse on quiet tracks.
	return math.Pow(rms, 0.3)
}

// Reset forgets recorded samples, e.g. after a seek.
func (t *LevelTap) Reset() {
	t.mu.Lock()
	t.nextIndex, t.filled = 0, 0
	t.mu.Unlock()
}
