// Command celebration-term plays the ambient, fairy dust and trail effects
// in a terminal. Every effect driver runs on its own goroutine.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/fairy-celebration/internal/config"
	"github.com/iburimskiy/fairy-celebration/internal/effects"
	"github.com/iburimskiy/fairy-celebration/internal/particle"
	"github.com/iburimskiy/fairy-celebration/internal/terminal"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// The screen owns stdout; logs go to a file or nowhere.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[Main] %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	if err := run(cfg, screen); err != nil && !errors.Is(err, context.Canceled) {
		screen.Fini()
		log.Fatalf("[Main] %v", err)
	}
}

// termLayers are the effects that read well as text cells.
var termLayers = []string{effects.LayerAmbient, effects.LayerTrail, effects.LayerFairyDust}

func run(cfg *config.Config, screen tcell.Screen) error {
	cols, rows := screen.Size()
	layers := make(map[string]*terminal.Layer, len(termLayers))
	engine := effects.NewEngine(effects.Options{
		TPS:            config.TPS,
		AmbientDensity: cfg.Effects.AmbientDensity,
		AmbientMinimum: cfg.Effects.AmbientMinimum,
		DustThreshold:  cfg.Effects.DustThreshold,
		Ceilings: effects.Ceilings{
			Ambient:   cfg.Effects.Ceilings.Ambient,
			FairyDust: cfg.Effects.Ceilings.FairyDust,
			Trail:     cfg.Effects.Ceilings.Trail,
			Confetti:  cfg.Effects.Ceilings.Confetti,
			Sparkle:   cfg.Effects.Ceilings.Sparkle,
		},
		Seed: cfg.Effects.Seed,
	}, func(layer string) particle.Surface {
		for _, name := range termLayers {
			if name == layer {
				l := terminal.NewLayer(cols, rows)
				layers[layer] = l
				return l
			}
		}
		return nil
	})
	defer engine.Close()
	engine.Resize(layers[effects.LayerAmbient].PixelSize())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	period := time.Second / config.TPS
	for _, name := range termLayers {
		d := engine.Driver(name)
		ticker := time.NewTicker(period)
		g.Go(func() error {
			defer ticker.Stop()
			return d.Run(ctx, ticker.C)
		})
	}

	events := make(chan tcell.Event, 64)
	go pump(ctx, screen.PollEvent, events)

	g.Go(func() error {
		frame := time.NewTicker(period)
		defer frame.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				if !handle(ev, engine, layers, cancel) {
					return context.Canceled
				}
			case <-frame.C:
				draw(screen, engine)
			}
		}
	})
	return g.Wait()
}

// pump forwards polled events until poll returns nil (the screen was
// finalized) or ctx is done.
func pump(ctx context.Context, poll func() tcell.Event, events chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handle applies one terminal event. It returns false to quit.
func handle(ev tcell.Event, engine *effects.Engine, layers map[string]*terminal.Layer, cancel context.CancelFunc) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			cancel()
			return false
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x := float64(col*terminal.CellWidth + terminal.CellWidth/2)
		y := float64(row*terminal.CellHeight + terminal.CellHeight/2)
		engine.FairyDust.Move(x, y)
		engine.Trail.Move(x, y)
		if ev.Buttons()&tcell.Button1 != 0 {
			engine.Ambient.Burst(x, y, 8)
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		for name, l := range layers {
			engine.Driver(name).Inspect(func(*particle.Pool, particle.Surface) {
				l.Resize(cols, rows)
			})
		}
		engine.Resize(cols*terminal.CellWidth, rows*terminal.CellHeight)
		log.Printf("[Term] resized to %dx%d cells", cols, rows)
	}
	return true
}

func draw(screen tcell.Screen, engine *effects.Engine) {
	terminal.Fill(screen)
	for _, name := range termLayers {
		engine.Driver(name).Inspect(func(_ *particle.Pool, s particle.Surface) {
			if l, ok := s.(*terminal.Layer); ok {
				l.Paint(screen)
			}
		})
	}
	screen.Show()
}
