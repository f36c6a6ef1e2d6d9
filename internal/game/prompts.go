package game

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/fairy-celebration/internal/audio"
	"github.com/iburimskiy/fairy-celebration/internal/gift"
	"github.com/iburimskiy/fairy-celebration/internal/guestbook"
)

// promptResult is applied to the game on the update goroutine.
type promptResult func(g *Game, now time.Time)

// prompter runs native dialogs off the game loop, one at a time.
type prompter struct {
	busy    atomic.Bool
	results chan promptResult
}

func newPrompter() *prompter {
	return &prompter{results: make(chan promptResult, 8)}
}

func (p *prompter) Busy() bool { return p.busy.Load() }

func (p *prompter) run(name string, fn func() (promptResult, error)) {
	if !p.busy.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer p.busy.Store(false)
		res, err := fn()
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return
			}
			log.Printf("[Prompt] %s failed: %v", name, err)
			p.results <- func(g *Game, _ time.Time) { g.lastErr = err }
			return
		}
		if res != nil {
			p.results <- res
		}
	}()
}

// drain applies finished dialogs.
func (p *prompter) drain(g *Game, now time.Time) {
	for {
		select {
		case res := <-p.results:
			res(g, now)
		default:
			return
		}
	}
}

func (g *Game) askWish() {
	book := g.book
	celebrant := g.cfg.Celebrant
	g.prompts.run("wish", func() (promptResult, error) {
		author, err := zenity.Entry("Your name:", zenity.Title("Leave a Birthday Wish"))
		if err != nil {
			return nil, err
		}
		wish, err := zenity.Entry(fmt.Sprintf("Your birthday wish for %s:", celebrant),
			zenity.Title("Leave a Birthday Wish"))
		if err != nil {
			return nil, err
		}
		msg, err := book.Add(author, wish)
		if errors.Is(err, guestbook.ErrEmptyMessage) {
			return func(g *Game, now time.Time) {
				g.toasts.Show("Please enter your name and a wish.", now, toastDuration)
			}, nil
		}
		if err != nil {
			return nil, err
		}
		return func(g *Game, now time.Time) {
			g.toasts.Show(fmt.Sprintf("Message Sent! Your wish for %s has been added!", celebrant), now, toastDuration)
			g.player.PlaySFX(audio.SoundSuccess, 0.6)
			g.sparkleAt(float64(g.width)/2, float64(g.height)/4, 10)
			if r, ok := g.sectionRect(secMessages); ok {
				x, y := center(r)
				g.engine.Sparkle.Around(x, y, 5)
			}
			if g.cfg.Debug {
				log.Printf("[Game] new wish %s", msg.ID)
			}
		}, nil
	})
}

func (g *Game) askGift() {
	current := *g.box
	g.prompts.run("gift", func() (promptResult, error) {
		labels := make([]string, len(gift.Kinds))
		for i, k := range gift.Kinds {
			labels[i] = string(k)
		}
		kind, err := zenity.List("Choose the gift inside the box:", labels,
			zenity.Title("Personalize Gift"), zenity.DefaultItems(string(current.Kind)))
		if err != nil {
			return nil, err
		}
		message, err := zenity.Entry("Gift message:", zenity.Title("Personalize Gift"),
			zenity.EntryText(current.Message))
		if err != nil {
			return nil, err
		}
		from, err := zenity.Entry("From:", zenity.Title("Personalize Gift"),
			zenity.EntryText(current.From))
		if err != nil {
			return nil, err
		}
		return func(g *Game, now time.Time) {
			g.box.Select(kind)
			g.box.Customize(message, from)
			g.toasts.Show("Gift updated!", now, toastDuration)
			g.sparkleAt(float64(g.width)/2, float64(g.height)/4, 10)
		}, nil
	})
}

func (g *Game) askRSVP() {
	g.prompts.run("rsvp", func() (promptResult, error) {
		name, err := zenity.Entry("Your name:", zenity.Title("RSVP"))
		if err != nil {
			return nil, err
		}
		answer, err := zenity.List("Will you attend?", []string{attendYes, attendNo},
			zenity.Title("RSVP"), zenity.DefaultItems(attendYes))
		if err != nil {
			return nil, err
		}
		return func(g *Game, now time.Time) {
			g.rsvp = rsvpReply{Name: name, Attending: answer != attendNo, Sent: true}
			log.Printf("[RSVP] submitted: name=%q attending=%v", name, g.rsvp.Attending)
			if r, ok := g.sectionRect(secRSVP); ok {
				x, y := center(r)
				g.engine.Sparkle.Around(x, y, 10)
			}
		}, nil
	})
}

// chooseMusic swaps the background track for a file picked by the user.
func (g *Game) chooseMusic() {
	player := g.player
	g.prompts.run("music", func() (promptResult, error) {
		filename, err := zenity.SelectFile(
			zenity.Title("Open Audio File"),
			zenity.FileFilters{{
				Name:     "Audio",
				Patterns: []string{"*.wav", "*.mp3", "*.flac"},
			}},
		)
		if err != nil {
			return nil, err
		}
		if err := player.Load(filename); err != nil {
			return nil, err
		}
		return func(g *Game, now time.Time) {
			g.lastErr = nil
			if !g.player.Playing() {
				g.toggleMusic(now)
			}
		}, nil
	})
}
