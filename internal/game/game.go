// Package game is the ebiten front end: a scrollable celebration page with
// particle layers drawn above and below its content.
package game

import (
	"fmt"
	"image"
	"log"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/fairy-celebration/internal/audio"
	"github.com/iburimskiy/fairy-celebration/internal/carousel"
	"github.com/iburimskiy/fairy-celebration/internal/config"
	"github.com/iburimskiy/fairy-celebration/internal/countdown"
	"github.com/iburimskiy/fairy-celebration/internal/effects"
	"github.com/iburimskiy/fairy-celebration/internal/gift"
	"github.com/iburimskiy/fairy-celebration/internal/guestbook"
	"github.com/iburimskiy/fairy-celebration/internal/particle"
	"github.com/iburimskiy/fairy-celebration/internal/render"
	"github.com/iburimskiy/fairy-celebration/internal/scroll"
	"github.com/iburimskiy/fairy-celebration/internal/tilt"
	"github.com/iburimskiy/fairy-celebration/internal/toast"
)

const (
	toastDuration = config.ToastSeconds * time.Second

	musicNoticeDelay    = 2 * time.Second
	musicNoticeDuration = 5 * time.Second

	ambientClickBurst = 8
	revealFadeTicks   = 48 // 0.8s
)

const (
	attendYes = "Joyfully Accept"
	attendNo  = "Regretfully Decline"
)

type rsvpReply struct {
	Name      string
	Attending bool
	Sent      bool
}

type Game struct {
	cfg *config.Config

	width, height int
	resized       bool

	engine *effects.Engine
	layers map[string]*render.Layer

	player *audio.Player
	book   *guestbook.Book
	box    *gift.Box
	slides *carousel.Carousel
	clock  *countdown.Ticker
	parts  countdown.Parts

	scroller *scroll.Scroller
	revealer *scroll.Revealer
	floaters *scroll.Floaters
	toasts   *toast.Stack
	prompts  *prompter

	slideTilt tilt.Card
	wishTilts [wishCards]tilt.Card
	canvases  map[int]*ebiten.Image

	rng    *rand.Rand
	now    time.Time
	tick   uint64
	cursor mgl64.Vec2
	hover  control
	rsvp   rsvpReply

	lastErr error
}

// New builds the page. player and book must not be nil; a disabled player
// and a memory-backed book are fine.
func New(cfg *config.Config, player *audio.Player, book *guestbook.Book) *Game {
	g := &Game{
		cfg:      cfg,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		resized:  true,
		layers:   make(map[string]*render.Layer, len(effects.Layers)),
		player:   player,
		book:     book,
		box:      gift.New(gift.Kind(cfg.Gift.Kind), cfg.Gift.Message, cfg.Gift.From),
		slides:   carousel.New(len(cfg.Memories)),
		clock:    countdown.NewTicker(cfg.TargetTime),
		scroller: scroll.NewScroller(config.TPS, config.ScrollFrequency, config.ScrollDamping),
		revealer: scroll.NewRevealer(revealFadeTicks),
		toasts:   toast.NewStack(config.TPS),
		prompts:  newPrompter(),
		canvases: map[int]*ebiten.Image{},
		rng:      rand.New(rand.NewPCG(cfg.Effects.Seed, uint64(time.Now().UnixNano()))),
	}

	for i := range sectionCount {
		g.revealer.Add(float64(i*config.SectionHeight), config.SectionHeight)
	}

	g.engine = effects.NewEngine(effects.Options{
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
		l := render.NewLayer(g.width, g.height)
		g.layers[layer] = l
		return l
	})

	// The hook runs on the fairy dust driver's goroutine; it gets its own rng.
	hitRng := rand.New(rand.NewPCG(cfg.Effects.Seed, 0x417))
	g.engine.FairyDust.OnBurst = func(n int) {
		if n%10 == 0 {
			g.player.PlaySFX(audio.SoundHit, 0.1+hitRng.Float64()*0.1)
		}
	}

	g.toasts.Schedule("Click the music button for a magical soundtrack!",
		time.Now().Add(musicNoticeDelay), musicNoticeDuration)
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	g.now = now
	g.tick++

	if g.resized {
		g.applyResize()
	}
	g.prompts.drain(g, now)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleKeys(now)
	g.handleMouse(now)

	offset := g.scroller.Update()
	g.updateTilts()
	g.revealer.Update(offset, float64(g.height))

	if g.box.Update(now) {
		if r, ok := g.controlRect(ctlGiftBox); ok {
			x, y := center(r)
			g.engine.Sparkle.Around(x, y, 10)
		}
	}
	if p, changed := g.clock.Update(now); changed {
		if p.Done && !g.parts.Done {
			log.Printf("[Game] countdown reached %s", g.clock.Target().Format(config.TargetLayout))
		}
		g.parts = p
	}
	g.player.Update(now)
	g.toasts.Update(now)

	if r, ok := g.controlRect(ctlGiftBox); ok {
		g.engine.Confetti.SetArea(r.Inset(-r.Dx() / 2))
	}

	return g.engine.Update()
}

func (g *Game) applyResize() {
	g.resized = false
	for _, l := range g.layers {
		l.Resize(g.width, g.height)
	}
	g.engine.Resize(g.width, g.height)
	g.scroller.SetBounds(float64(sectionCount*config.SectionHeight), float64(g.height))
	g.floaters = newFloaters(g.width, g.rng)
}

func (g *Game) handleKeys(now time.Time) {
	step := float64(config.ScrollStep)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.toggleMusic(now)
	case isKeyRepeated(ebiten.KeyArrowDown):
		g.scroller.ScrollBy(step)
	case isKeyRepeated(ebiten.KeyArrowUp):
		g.scroller.ScrollBy(-step)
	case isKeyRepeated(ebiten.KeyPageDown):
		g.scroller.ScrollBy(float64(g.height) * 0.9)
	case isKeyRepeated(ebiten.KeyPageUp):
		g.scroller.ScrollBy(-float64(g.height) * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.scroller.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.scroller.ScrollTo(g.scroller.Max())
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.slides.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.slides.Next()
	}
}

func isKeyRepeated(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 20 && d%4 == 0)
}

func (g *Game) handleMouse(now time.Time) {
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scroller.ScrollBy(-dy * config.ScrollStep)
	}

	mx, my := ebiten.CursorPosition()
	pos := mgl64.Vec2{float64(mx), float64(my)}
	if pos != g.cursor {
		g.cursor = pos
		g.engine.FairyDust.Move(pos.X(), pos.Y())
		g.engine.Trail.Move(pos.X(), pos.Y())
	}

	g.hover = g.controlAt(mx, my)
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if g.hover == ctlNone {
		g.engine.Ambient.Burst(pos.X(), pos.Y(), ambientClickBurst)
		return
	}
	g.activate(g.hover, now)
}

// updateTilts points the memory slide and the wish cards at the cursor.
func (g *Game) updateTilts() {
	if g.slides.Len() > 0 {
		g.slideTilt.Update(g.screenRect(g.slideRect()), g.cursor)
	}
	n := g.book.Len()
	for i, r := range g.wishCardRects() {
		if i < n {
			g.wishTilts[i].Update(g.screenRect(r), g.cursor)
		} else {
			g.wishTilts[i].Reset()
		}
	}
}

func (g *Game) activate(c control, now time.Time) {
	if g.cfg.Debug {
		log.Printf("[Game] control %s", c)
	}
	switch c {
	case ctlMusic:
		g.toggleMusic(now)
	case ctlChooseMusic:
		g.chooseMusic()
	case ctlPrev:
		g.slides.Prev()
	case ctlNext:
		g.slides.Next()
	case ctlWish:
		g.askWish()
	case ctlGiftBox:
		g.openGift(now)
	case ctlGiftEdit:
		g.askGift()
	case ctlGiftReset:
		g.box.Reset()
	case ctlRSVP:
		g.askRSVP()
	default:
		if i, ok := c.dot(); ok {
			g.slides.GoTo(i)
		}
	}
}

func (g *Game) toggleMusic(now time.Time) {
	if !g.player.Enabled() {
		g.toasts.Show("No music loaded. Pick a track with the ... button.", now, toastDuration)
		return
	}
	if g.player.Toggle(now) {
		log.Printf("[Game] music on")
	} else {
		log.Printf("[Game] music off")
	}
	if r, ok := g.controlRect(ctlMusic); ok {
		x, y := center(r)
		g.sparkleAt(x, y, 10)
	}
}

func (g *Game) openGift(now time.Time) {
	if !g.box.Open(now) {
		return
	}
	log.Printf("[Game] gift opened: %s", g.box.Kind)
	g.engine.Confetti.Burst()
	g.player.PlaySFX(audio.SoundSuccess, 0.7)
}

func (g *Game) sparkleAt(x, y float64, n int) {
	g.engine.Sparkle.Around(x, y, n)
}

// Layout follows the window so the particle layers always cover it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return g.width, g.height
}

// Close stops the effect drivers.
func (g *Game) Close() {
	g.engine.Close()
	for _, img := range g.canvases {
		img.Deallocate()
	}
}

func (g *Game) status() string {
	s := fmt.Sprintf("%s | scroll %3.0f%%", g.cfg.Title, g.scroller.Percent())
	if g.cfg.Debug {
		for _, d := range g.engine.Drivers() {
			s += fmt.Sprintf(" | %s %d", d.Name(), d.Pool().Len())
		}
		s += fmt.Sprintf(" | %.0f TPS", ebiten.ActualTPS())
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

// screenRect converts a page rectangle to screen space.
func (g *Game) screenRect(r image.Rectangle) image.Rectangle {
	return r.Sub(image.Pt(0, int(g.scroller.Offset())))
}
