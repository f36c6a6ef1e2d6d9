package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/fairy-celebration/internal/audio"
	"github.com/iburimskiy/fairy-celebration/internal/config"
	"github.com/iburimskiy/fairy-celebration/internal/game"
	"github.com/iburimskiy/fairy-celebration/internal/guestbook"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	debug := flag.Bool("debug", false, "log driver stats and show them in the status line")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	if *debug {
		cfg.Debug = true
	}

	book := guestbook.Open(openStore(cfg.Storage.AppName), cfg.Storage.Key, samples(cfg))

	player := audio.NewPlayer(audio.Options{
		Music: cfg.Audio.Music,
		Sounds: map[string]string{
			audio.SoundHit:     cfg.Audio.Hit,
			audio.SoundSuccess: cfg.Audio.Success,
		},
		Volume:  cfg.Audio.Volume,
		FadeIn:  time.Duration(cfg.Audio.FadeIn) * time.Millisecond,
		FadeOut: time.Duration(cfg.Audio.FadeOut) * time.Millisecond,
	})
	if err := player.Init(); err != nil {
		log.Printf("[Audio] Warning: music disabled: %v", err)
	}
	defer player.Close()

	g := game.New(cfg, player, book)
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Title + " - " + cfg.Celebrant)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("[Main] %v", err)
	}
}

// openStore falls back to an in-memory store when the data directory is
// unavailable; wishes then last until the window closes.
func openStore(appName string) guestbook.Store {
	store, err := guestbook.OpenGDataStore(appName)
	if err != nil {
		log.Printf("[GuestBook] Warning: %v (wishes will not be saved)", err)
		return guestbook.NewMemoryStore()
	}
	return store
}

func samples(cfg *config.Config) []guestbook.Message {
	out := make([]guestbook.Message, len(cfg.Guests))
	for i, m := range cfg.Guests {
		out[i] = guestbook.Message{Text: m.Text, Author: m.Author}
	}
	return out
}
