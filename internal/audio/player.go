// Package audio plays the background track and the short effect sounds.
package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const (
	// SampleRate is the speaker rate; every source is resampled to it.
	SampleRate = beep.SampleRate(44100)

	levelRingSize   = 8192
	levelWindow     = 2048
	smoothingFactor = 0.6
	resampleQuality = 4
)

// ErrUnsupported is returned for files that are not wav, mp3 or flac.
var ErrUnsupported = errors.New("unsupported audio file")

const (
	SoundHit     = "hit"
	SoundSuccess = "success"
)

type Options struct {
	Music   string
	Sounds  map[string]string
	Volume  float64
	FadeIn  time.Duration
	FadeOut time.Duration
}

// Player owns the speaker. Until a track is loaded the player is disabled
// and the music methods are no-ops.
type Player struct {
	opts Options

	mu      sync.Mutex
	enabled bool
	file    *os.File
	music   beep.StreamSeekCloser
	tap     *LevelTap
	gain    *effects.Gain
	ctrl    *beep.Ctrl
	sounds  map[string]*beep.Buffer

	playing     bool
	pauseOnDone bool
	volume      float64
	fader       Fader
	level       float64
}

func NewPlayer(opts Options) *Player {
	if opts.Volume <= 0 || opts.Volume > 1 {
		opts.Volume = 0.5
	}
	return &Player{opts: opts, sounds: map[string]*beep.Buffer{}}
}

// Init opens the speaker and loads every configured file. Missing effect
// sounds are logged and skipped. A missing track leaves the music toggle
// disabled but effect sounds still play.
func (p *Player) Init() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	for name, path := range p.opts.Sounds {
		buf, err := loadBuffer(path)
		if err != nil {
			log.Printf("[Audio] Warning: sound %s unavailable: %v", name, err)
			continue
		}
		p.sounds[name] = buf
	}
	if err := p.Load(p.opts.Music); err != nil {
		return err
	}
	return nil
}

// decode opens path and picks the decoder by extension.
func decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return f, streamer, format, nil
}

func resampled(s beep.Streamer, format beep.Format) beep.Streamer {
	if format.SampleRate == SampleRate {
		return s
	}
	return beep.Resample(resampleQuality, format.SampleRate, SampleRate, s)
}

// loadBuffer decodes a short sound fully into memory.
func loadBuffer(path string) (*beep.Buffer, error) {
	f, streamer, format, err := decode(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(resampled(streamer, format))
	return buf, nil
}

// Load replaces the background track. The new track starts paused and
// silent; Toggle starts it.
func (p *Player) Load(path string) error {
	f, streamer, format, err := decode(path)
	if err != nil {
		return err
	}

	tap := NewLevelTap(resampled(beep.Loop(-1, streamer), format), levelRingSize)
	gain := &effects.Gain{Streamer: tap, Gain: -1}
	ctrl := &beep.Ctrl{Streamer: gain, Paused: true}

	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	if p.ctrl != nil {
		p.ctrl.Streamer = nil
	}
	speaker.Unlock()
	p.closeMusic()

	p.file, p.music, p.tap, p.gain, p.ctrl = f, streamer, tap, gain, ctrl
	p.playing, p.volume = false, 0
	p.enabled = true
	speaker.Play(ctrl)

	log.Printf("[Audio] loaded %s (%d Hz)", path, format.SampleRate)
	return nil
}

func (p *Player) closeMusic() {
	if p.music != nil {
		_ = p.music.Close()
		p.music = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Playing reports the toggle state, which flips immediately even while a
// fade out is still audible.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Toggle starts the track from the beginning with a fade in, or fades it
// out and pauses. It returns the new state.
func (p *Player) Toggle(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return false
	}

	if p.playing {
		p.playing = false
		p.pauseOnDone = true
		p.fader.Start(p.volume, 0, now, p.opts.FadeOut)
		return false
	}

	speaker.Lock()
	if err := p.music.Seek(0); err != nil {
		log.Printf("[Audio] Warning: rewind failed: %v", err)
	}
	p.volume = 0
	p.gain.Gain = -1
	p.ctrl.Paused = false
	speaker.Unlock()
	p.tap.Reset()

	p.playing = true
	p.pauseOnDone = false
	p.fader.Start(0, p.opts.Volume, now, p.opts.FadeIn)
	return true
}

// Update advances a running fade. Call it once per tick.
func (p *Player) Update(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	if p.fader.Active() {
		v, done := p.fader.Value(now)
		p.volume = v
		speaker.Lock()
		p.gain.Gain = v - 1
		if done && p.pauseOnDone {
			p.ctrl.Paused = true
		}
		speaker.Unlock()
		if done {
			p.pauseOnDone = false
		}
	}

	var lvl float64
	if p.playing {
		lvl = p.tap.Level(levelWindow)
	}
	p.level = smoothingFactor*p.level + (1-smoothingFactor)*lvl
}

// Volume is the current track volume in [0, 1].
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Level is the smoothed loudness of the track, used to pulse the button.
func (p *Player) Level() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// PlaySFX plays a loaded effect sound once at volume in [0, 1].
func (p *Player) PlaySFX(name string, volume float64) {
	p.mu.Lock()
	buf, ok := p.sounds[name]
	p.mu.Unlock()
	if !ok {
		return
	}
	speaker.Play(&effects.Gain{
		Streamer: buf.Streamer(0, buf.Len()),
		Gain:     min(max(volume, 0), 1) - 1,
	})
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Clear()
	p.closeMusic()
	p.enabled = false
}
