package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// TargetLayout is the layout of the countdown target, read in local time.
const TargetLayout = "2006-01-02 15:04:05"

// Config is the presentation's YAML configuration. Every field has a
// default, so an empty file is valid.
type Config struct {
	Title     string `yaml:"title"`
	Celebrant string `yaml:"celebrant"`

	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`

	// Countdown target, "2006-01-02 15:04:05" in local time.
	Target     string    `yaml:"target"`
	TargetTime time.Time `yaml:"-"`

	Audio    AudioConfig    `yaml:"audio"`
	Storage  StorageConfig  `yaml:"storage"`
	Effects  EffectsConfig  `yaml:"effects"`
	Guests   []Message      `yaml:"guests"`
	Gift     GiftConfig     `yaml:"gift"`
	Memories []MemoryConfig `yaml:"memories"`

	Debug bool `yaml:"debug"`
}

type AudioConfig struct {
	Music   string  `yaml:"music"`
	Hit     string  `yaml:"hit"`
	Success string  `yaml:"success"`
	Volume  float64 `yaml:"volume"`
	FadeIn  int     `yaml:"fadeInMs"`
	FadeOut int     `yaml:"fadeOutMs"`
}

type StorageConfig struct {
	AppName string `yaml:"appName"`
	Key     string `yaml:"key"`
}

type EffectsConfig struct {
	AmbientDensity float64 `yaml:"ambientDensity"`
	AmbientMinimum int     `yaml:"ambientMinimum"`
	DustThreshold  float64 `yaml:"dustThreshold"`
	Ceilings       struct {
		Ambient   int `yaml:"ambient"`
		FairyDust int `yaml:"fairyDust"`
		Trail     int `yaml:"trail"`
		Confetti  int `yaml:"confetti"`
		Sparkle   int `yaml:"sparkle"`
	} `yaml:"ceilings"`
	Seed uint64 `yaml:"seed"`
}

// Message is a guest-book sample entry.
type Message struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}

type GiftConfig struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
	From    string `yaml:"from"`
}

type MemoryConfig struct {
	Title   string `yaml:"title"`
	Caption string `yaml:"caption"`
	Color   string `yaml:"color"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	_ = resolve(cfg)
	return cfg
}

// Load reads a YAML config file. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML, fills unset fields with defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	applyDefaults(&cfg)
	if err := resolve(&cfg); err != nil {
		return nil, err
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "Happy 1st Birthday"
	}
	if cfg.Celebrant == "" {
		cfg.Celebrant = "Madiha"
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = WindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = WindowHeight
	}
	if cfg.Target == "" {
		cfg.Target = "2025-05-17 16:00:00"
	}

	if cfg.Audio.Music == "" {
		cfg.Audio.Music = "assets/background.mp3"
	}
	if cfg.Audio.Hit == "" {
		cfg.Audio.Hit = "assets/hit.wav"
	}
	if cfg.Audio.Success == "" {
		cfg.Audio.Success = "assets/success.wav"
	}
	if cfg.Audio.Volume == 0 {
		cfg.Audio.Volume = 0.5
	}
	if cfg.Audio.FadeIn == 0 {
		cfg.Audio.FadeIn = 1500
	}
	if cfg.Audio.FadeOut == 0 {
		cfg.Audio.FadeOut = 800
	}

	if cfg.Storage.AppName == "" {
		cfg.Storage.AppName = "fairy_celebration"
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = "birthdayMessages"
	}

	c := &cfg.Effects.Ceilings
	if c.Ambient == 0 {
		c.Ambient = 400
	}
	if c.FairyDust == 0 {
		c.FairyDust = 1500
	}
	if c.Trail == 0 {
		c.Trail = 600
	}
	if c.Confetti == 0 {
		c.Confetti = 500
	}
	if c.Sparkle == 0 {
		c.Sparkle = 300
	}

	if len(cfg.Guests) == 0 {
		cfg.Guests = []Message{
			{
				Text:   "Wishing our sweet princess a magical first birthday filled with wonders and joy!",
				Author: "Uncle Rahul & Family",
			},
			{
				Text:   "May your special day be as bright and beautiful as your smile, little one!",
				Author: "The Patel Family",
			},
		}
	}

	if cfg.Gift.Kind == "" {
		cfg.Gift.Kind = "teddy"
	}
	if cfg.Gift.Message == "" {
		cfg.Gift.Message = "Happy Birthday, Princess " + cfg.Celebrant + "!"
	}
	if cfg.Gift.From == "" {
		cfg.Gift.From = "Your Loving Family"
	}

	if len(cfg.Memories) == 0 {
		cfg.Memories = []MemoryConfig{
			{Title: "First Smile", Caption: "The day the whole house lit up", Color: "#ffadd2"},
			{Title: "First Steps", Caption: "Wobbly, brave and unstoppable", Color: "#b37feb"},
			{Title: "First Snow", Caption: "Tiny mittens, giant giggles", Color: "#69c0ff"},
			{Title: "First Cake", Caption: "More frosting on the face than the cake", Color: "#ffd566"},
		}
	}
}

func resolve(cfg *Config) error {
	t, err := time.ParseInLocation(TargetLayout, cfg.Target, time.Local)
	if err != nil {
		return fmt.Errorf("%w: target %q: %v", ErrInvalid, cfg.Target, err)
	}
	cfg.TargetTime = t
	return nil
}

func validate(cfg *Config) error {
	if cfg.Window.Width < 320 || cfg.Window.Height < 240 {
		return fmt.Errorf("%w: window %dx%d is smaller than 320x240", ErrInvalid, cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v outside [0, 1]", ErrInvalid, cfg.Audio.Volume)
	}
	if cfg.Effects.AmbientDensity < 0 {
		return fmt.Errorf("%w: negative ambient density", ErrInvalid)
	}
	switch cfg.Gift.Kind {
	case "teddy", "crown", "wand":
	default:
		return fmt.Errorf("%w: unknown gift kind %q", ErrInvalid, cfg.Gift.Kind)
	}
	return nil
}
