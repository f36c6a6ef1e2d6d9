package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, WindowWidth, cfg.Window.Width)
	assert.Equal(t, WindowHeight, cfg.Window.Height)
	assert.Equal(t, 0.5, cfg.Audio.Volume)
	assert.Equal(t, 1500, cfg.Audio.FadeIn)
	assert.Equal(t, 800, cfg.Audio.FadeOut)
	assert.Equal(t, "birthdayMessages", cfg.Storage.Key)
	assert.Len(t, cfg.Guests, 2)
	assert.Equal(t, "teddy", cfg.Gift.Kind)
	assert.Equal(t, 400, cfg.Effects.Ceilings.Ambient)

	want := time.Date(2025, time.May, 17, 16, 0, 0, 0, time.Local)
	assert.True(t, cfg.TargetTime.Equal(want))
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Title, cfg.Title)
}

func TestLoadOverridesAndKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "celebration.yaml")
	data := []byte(`
celebrant: Aria
target: "2030-01-02 03:04:05"
window:
  width: 1500
  height: 800
audio:
  volume: 0.25
effects:
  ceilings:
    confetti: 120
gift:
  kind: wand
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Aria", cfg.Celebrant)
	assert.Equal(t, "Happy Birthday, Princess Aria!", cfg.Gift.Message)
	assert.Equal(t, 1500, cfg.Window.Width)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.Equal(t, 1500, cfg.Audio.FadeIn)
	assert.Equal(t, 120, cfg.Effects.Ceilings.Confetti)
	assert.Equal(t, 1500, cfg.Effects.Ceilings.FairyDust)
	assert.Equal(t, "wand", cfg.Gift.Kind)
	assert.Equal(t, 2030, cfg.TargetTime.Year())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad target":  `target: "tomorrow"`,
		"tiny window": "window:\n  width: 100\n  height: 100\n",
		"loud":        "audio:\n  volume: 3\n",
		"gift":        "gift:\n  kind: pony\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("window: [1, 2"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}
