package game

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/fairy-celebration/internal/config"
	"github.com/iburimskiy/fairy-celebration/internal/effects"
	"github.com/iburimskiy/fairy-celebration/internal/gift"
	"github.com/iburimskiy/fairy-celebration/internal/render"
	"github.com/iburimskiy/fairy-celebration/internal/scroll"
	"github.com/iburimskiy/fairy-celebration/internal/tilt"
)

var (
	inkColor      = color.NRGBA{R: 91, G: 42, B: 134, A: 255}
	softInkColor  = color.NRGBA{R: 140, G: 90, B: 170, A: 255}
	pinkColor     = color.NRGBA{R: 255, G: 133, B: 192, A: 255}
	lavenderColor = color.NRGBA{R: 179, G: 127, B: 235, A: 255}
	goldColor     = color.NRGBA{R: 255, G: 197, B: 61, A: 255}
	cardColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 210}
)

const dateLayout = "Monday, January 2 2006 at 3:04 PM"

func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.Present()

	g.drawBackground(screen)
	g.drawLayer(screen, effects.LayerAmbient)
	g.drawFloaters(screen)
	g.drawSections(screen)
	g.drawControls(screen)
	for _, name := range effects.Layers {
		if name != effects.LayerAmbient {
			g.drawLayer(screen, name)
		}
	}
	g.drawIndicator(screen)
	g.drawToasts(screen)

	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) drawLayer(screen *ebiten.Image, name string) {
	if l := g.layers[name]; l != nil {
		l.DrawTo(screen)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	t := float64(g.tick) / config.TPS
	const band = 4
	for y := 0; y < g.height; y += band {
		ratio := float64(y) / float64(g.height)
		hue := 330 - 50*ratio + 8*math.Sin(t*0.3+ratio*math.Pi)
		clr := hsva(hue, 0.12+0.04*math.Sin(t*0.5), 1, 1)
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), band, clr, false)
	}
}

func newFloaters(width int, rng *rand.Rand) *scroll.Floaters {
	f := scroll.NewFloaters(rng.Int64())
	page := float64(sectionCount * config.SectionHeight)
	glyphs := []string{"star", "bubble"}
	for i := range 14 {
		dir := 0.5 + rng.Float64()*1.5
		if i%2 == 1 {
			dir = -dir
		}
		f.Add(scroll.Floater{
			Anchor:   mgl64.Vec2{rng.Float64() * float64(width), rng.Float64() * page},
			Speed:    5 + rng.Float64()*15,
			Parallax: dir,
			Glyph:    glyphs[i%len(glyphs)],
		}, rng)
	}
	return f
}

func (g *Game) drawFloaters(screen *ebiten.Image) {
	if g.floaters == nil {
		return
	}
	s := render.Wrap(screen)
	offset := g.scroller.Offset()
	w, h := float64(g.width), float64(g.height)
	for i := range g.floaters.Len() {
		fl := g.floaters.At(i)
		p := g.floaters.Position(i, g.tick, g.cursor, w, h, offset)
		p[1] -= offset
		if p.Y() < -40 || p.Y() > h+40 {
			continue
		}
		hue := 280 + float64(i)*20 + float64(g.tick)*0.2
		switch fl.Glyph {
		case "star":
			s.Star(p.X(), p.Y(), 10, 4, 5, float64(g.tick)*0.01, hsva(hue, 0.45, 1, 0.7))
		default:
			s.Circle(p.X(), p.Y(), 14, hsva(hue, 0.25, 1, 0.35))
			s.Circle(p.X()-4, p.Y()-4, 4, color.NRGBA{R: 255, G: 255, B: 255, A: 140})
		}
	}
}

func (g *Game) drawSections(screen *ebiten.Image) {
	offset := g.scroller.Offset()
	for i := range sectionCount {
		top := float64(sectionTop(i)) - offset
		if top > float64(g.height) || top+config.SectionHeight < 0 {
			continue
		}
		alpha := g.revealer.Alpha(i)
		if alpha == 0 {
			continue
		}
		y := top + g.revealer.Rise(i)
		switch i {
		case secHero:
			g.drawHero(screen, y, alpha)
		case secCountdown:
			g.drawCountdown(screen, y, alpha)
		case secMemories:
			g.drawMemories(screen, y, alpha)
		case secMessages:
			g.drawMessages(screen, y, alpha)
		case secGift:
			g.drawGift(screen, y, alpha)
		case secRSVP:
			g.drawRSVP(screen, y, alpha)
		}
	}
}

func (g *Game) heading(screen *ebiten.Image, title string, y, alpha float64) {
	drawCentered(screen, title, float64(g.width)/2, y+70, 3, fade(inkColor, alpha))
}

func (g *Game) drawHero(screen *ebiten.Image, y, alpha float64) {
	const scale = 5.0
	title := []rune(g.cfg.Title)
	cw := textWidth("M", scale)
	x := (float64(g.width) - cw*float64(len(title))) / 2
	for i, r := range title {
		bounce := math.Sin(float64(g.tick)*0.06+float64(i)*0.4) * 10
		hue := 300 + float64(i)*12 + float64(g.tick)*0.5
		drawText(screen, string(r), x+float64(i)*cw, y+160+bounce, scale, hsva(hue, 0.55, 0.85, alpha))
	}
	cx := float64(g.width) / 2
	drawCentered(screen, "Princess "+g.cfg.Celebrant, cx, y+290, 3.5, fade(inkColor, alpha))
	drawCentered(screen, "Scroll down to join the magic", cx, y+380, 1.5, fade(softInkColor, alpha))
	drawCentered(screen, "Wheel / arrows: scroll    Space: music    Click: sparkles    Esc: quit",
		cx, y+540, 1, fade(softInkColor, alpha))
}

func (g *Game) drawCountdown(screen *ebiten.Image, y, alpha float64) {
	g.heading(screen, "Countdown to the Party", y, alpha)
	cx := float64(g.width) / 2
	drawCentered(screen, g.clock.Target().Format(dateLayout), cx, y+130, 1.5, fade(softInkColor, alpha))

	if g.parts.Done {
		pulse := 4 + 0.3*math.Sin(float64(g.tick)*0.1)
		drawCentered(screen, g.parts.Label(), cx, y+280, pulse, fade(pinkColor, alpha))
		return
	}
	cards := []struct {
		v     int
		label string
	}{
		{g.parts.Days, "Days"},
		{g.parts.Hours, "Hours"},
		{g.parts.Minutes, "Minutes"},
		{g.parts.Seconds, "Seconds"},
	}
	const cw, gap = 140.0, 30.0
	x := cx - (cw*4+gap*3)/2
	for i, c := range cards {
		cardX := x + float64(i)*(cw+gap)
		vector.DrawFilledRect(screen, float32(cardX), float32(y+220), cw, cw, fade(cardColor, alpha), false)
		vector.StrokeRect(screen, float32(cardX), float32(y+220), cw, cw, 2, fade(lavenderColor, alpha), false)
		drawCentered(screen, fmt.Sprintf("%02d", c.v), cardX+cw/2, y+245, 4, fade(inkColor, alpha))
		drawCentered(screen, c.label, cardX+cw/2, y+320, 1.5, fade(softInkColor, alpha))
	}
}

func (g *Game) drawMemories(screen *ebiten.Image, y, alpha float64) {
	g.heading(screen, "Magical Memories", y, alpha)
	if g.slides.Len() == 0 {
		return
	}
	mem := g.cfg.Memories[g.slides.Current()]
	fill := pinkColor
	if c, err := colorful.Hex(mem.Color); err == nil {
		r, gr, b := c.RGB255()
		fill = color.NRGBA{R: r, G: gr, B: b, A: 255}
	}
	rise := y - (float64(sectionTop(secMemories)) - g.scroller.Offset())
	r := g.screenRect(g.slideRect()).Add(image.Pt(0, int(rise)))

	card := g.canvas(canvasSlide, r.Dx(), r.Dy())
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(card, 0, 0, w, h, fade(fill, 0.85), false)
	vector.StrokeRect(card, 1.5, 1.5, w-3, h-3, 3, color.White, false)
	cx, cy := float64(w)/2, float64(h)/2
	drawCentered(card, mem.Title, cx, cy-50, 3, inkColor)
	for i, line := range wrap(mem.Caption, float64(w)-40, 1.5) {
		drawCentered(card, line, cx, cy+10+float64(i)*lineHeight*1.5, 1.5, inkColor)
	}
	drawCentered(card, fmt.Sprintf("%d / %d", g.slides.Current()+1, g.slides.Len()), cx, float64(h)-30, 1, inkColor)
	drawShine(card, &g.slideTilt)

	render.DrawQuad(screen, card, g.slideTilt.Quad(r), float32(alpha))
}

func (g *Game) drawMessages(screen *ebiten.Image, y, alpha float64) {
	g.heading(screen, "Birthday Wishes", y, alpha)
	rise := y - (float64(sectionTop(secMessages)) - g.scroller.Offset())
	rects := g.wishCardRects()
	for i, m := range g.book.Newest(wishCards) {
		r := g.screenRect(rects[i]).Add(image.Pt(0, int(rise)))
		card := g.canvas(canvasWish0+i, r.Dx(), r.Dy())
		w, h := float32(r.Dx()), float32(r.Dy())

		border := lavenderColor
		if m.Guest() {
			border = goldColor
		}
		vector.DrawFilledRect(card, 0, 0, w, h, cardColor, false)
		vector.StrokeRect(card, 1, 1, w-2, h-2, 2, border, false)
		lines := wrap(`"`+m.Text+`"`, float64(w)-30, 1.5)
		for j, line := range lines[:min(len(lines), 4)] {
			drawText(card, line, 15, 15+float64(j)*lineHeight*1.5, 1.5, inkColor)
		}
		drawText(card, "- "+m.Author, 15, float64(h)-30, 1.5, softInkColor)
		drawShine(card, &g.wishTilts[i])

		render.DrawQuad(screen, card, g.wishTilts[i].Quad(r), float32(alpha))
	}
	drawCentered(screen, fmt.Sprintf("%d wishes so far", g.book.Len()), float64(g.width)/2, y+500, 1.2, fade(softInkColor, alpha))
}

// Offscreen canvases of the tilting cards.
const (
	canvasSlide = iota
	canvasWish0
)

// canvas returns a cleared w×h offscreen image kept under key.
func (g *Game) canvas(key, w, h int) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	img := g.canvases[key]
	if img != nil {
		if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
			img.Clear()
			return img
		}
		img.Deallocate()
	}
	img = ebiten.NewImage(w, h)
	g.canvases[key] = img
	return img
}

const shineRings = 6

// drawShine lays a soft white glow around the cursor on a tilted card.
func drawShine(card *ebiten.Image, c *tilt.Card) {
	if !c.Active {
		return
	}
	b := card.Bounds()
	radius := c.ShineRadius(float64(b.Dx()), float64(b.Dy()))
	step := tilt.ShineAlpha / shineRings
	clr := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(step * 255)}
	for i := range shineRings {
		r := radius * float64(shineRings-i) / shineRings
		vector.DrawFilledCircle(card, float32(c.Shine.X()), float32(c.Shine.Y()), float32(r), clr, true)
	}
}

func (g *Game) drawGift(screen *ebiten.Image, y, alpha float64) {
	g.heading(screen, "A Special Gift", y, alpha)
	cx := float64(g.width) / 2
	page := g.giftBoxRect()
	rise := y - (float64(sectionTop(secGift)) - g.scroller.Offset())
	r := g.screenRect(page).Add(image.Pt(0, int(rise)))
	bx, by, bw, bh := float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())

	switch g.box.State() {
	case gift.Closed, gift.Opening:
		p := g.box.Progress(g.now)
		wiggle := float32(0)
		if g.hover == ctlGiftBox {
			wiggle = float32(math.Sin(float64(g.tick)*0.4) * 3)
		}
		vector.DrawFilledRect(screen, bx, by, bw, bh, fade(pinkColor, alpha), false)
		vector.DrawFilledRect(screen, bx+bw/2-10, by, 20, bh, fade(goldColor, alpha), false)
		lidY := by - 30 - float32(p*80) + wiggle
		vector.DrawFilledRect(screen, bx-10, lidY, bw+20, 30, fade(lavenderColor, alpha*(1-p)), false)
		vector.DrawFilledRect(screen, bx+bw/2-10, lidY, 20, 30, fade(goldColor, alpha*(1-p)), false)
		if g.box.State() == gift.Closed {
			drawCentered(screen, "Click the box to open it!", cx, float64(r.Max.Y)+30, 1.5, fade(softInkColor, alpha))
		}
	case gift.Revealed:
		drawCentered(screen, g.box.Kind.Label(), cx, float64(r.Min.Y)-10, 2.5, fade(pinkColor, alpha))
		for i, line := range wrap(g.box.Message, float64(g.width)-200, 2) {
			drawCentered(screen, line, cx, float64(r.Min.Y)+50+float64(i)*lineHeight*2, 2, fade(inkColor, alpha))
		}
		drawCentered(screen, "From: "+g.box.From, cx, float64(r.Max.Y)+20, 1.5, fade(softInkColor, alpha))
	}
}

func (g *Game) drawRSVP(screen *ebiten.Image, y, alpha float64) {
	g.heading(screen, "Join the Celebration", y, alpha)
	cx := float64(g.width) / 2
	if !g.rsvp.Sent {
		drawCentered(screen, "Will you celebrate with us on "+g.clock.Target().Format(dateLayout)+"?",
			cx, y+220, 1.5, fade(inkColor, alpha))
		return
	}
	drawCentered(screen, "Thank You!", cx, y+200, 3.5, fade(pinkColor, alpha))
	drawCentered(screen, "We've received your RSVP and can't wait to celebrate with you!", cx, y+280, 1.5, fade(inkColor, alpha))
	answer := "can't make it this time"
	if g.rsvp.Attending {
		answer = "will be there"
	}
	drawCentered(screen, g.rsvp.Name+" "+answer, cx, y+320, 1.5, fade(softInkColor, alpha))
}

func (g *Game) drawControls(screen *ebiten.Image) {
	for _, c := range g.controls() {
		if c.id == ctlGiftBox {
			continue
		}
		x, y := float32(c.rect.Min.X), float32(c.rect.Min.Y)
		w, h := float32(c.rect.Dx()), float32(c.rect.Dy())

		if _, ok := c.id.dot(); ok {
			clr := lavenderColor
			if !c.enabled {
				clr = pinkColor
			}
			vector.DrawFilledCircle(screen, x+w/2, y+h/2, w/2, clr, true)
			continue
		}

		// Button colors follow hover and enabled state.
		var bg color.NRGBA
		switch {
		case !c.enabled:
			bg = color.NRGBA{R: 200, G: 190, B: 210, A: 160}
		case g.hover == c.id:
			bg = color.NRGBA{R: 230, G: 110, B: 175, A: 255}
		default:
			bg = color.NRGBA{R: 255, G: 133, B: 192, A: 235}
		}
		label := c.label
		if c.id == ctlMusic {
			g.drawMusicPulse(screen, c.rect)
			if g.player.Playing() {
				label = "Music: On"
			} else {
				label = "Music: Off"
			}
		}
		vector.DrawFilledRect(screen, x, y, w, h, bg, false)
		vector.StrokeRect(screen, x, y, w, h, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 200}, false)
		drawCentered(screen, label, float64(x+w/2), float64(y+h/2)-lineHeight*0.75, 1.5, color.White)
	}
}

// drawMusicPulse rings the music button with the loudness of the track.
func (g *Game) drawMusicPulse(screen *ebiten.Image, r image.Rectangle) {
	lvl := g.player.Level()
	if lvl <= 0.01 {
		return
	}
	x, y := center(r)
	radius := float32(r.Dx())/2 + float32(lvl*24)
	hue := 300 + float64(g.tick)
	vector.StrokeCircle(screen, float32(x), float32(y), radius, 3, hsva(hue, 0.5, 1, 0.3+lvl*0.5), true)
}

// drawIndicator draws the scroll progress bar with the fairy riding it.
func (g *Game) drawIndicator(screen *ebiten.Image) {
	p := g.scroller.Progress()
	x := float32(g.width - config.IndicatorMargin - config.IndicatorWidth)
	top := float32(40)
	trackH := float32(g.height) - top*2

	vector.DrawFilledRect(screen, x, top, config.IndicatorWidth, trackH, color.NRGBA{R: 255, G: 255, B: 255, A: 120}, false)
	if p > 0 {
		vector.DrawFilledRect(screen, x, top, config.IndicatorWidth, trackH*float32(p), hsva(300+p*60, 0.5, 1, 0.9), false)
	}

	fx := float64(x) - 12
	fy := float64(top+trackH) - float64(trackH)*p
	size := 10 * scroll.FairyScale(p)
	a := scroll.FairyOpacity(p)
	s := render.Wrap(screen)
	s.Star(fx, fy, size, size/2, 5, float64(g.tick)*0.02, fade(goldColor, a))
	s.Circle(fx, fy, size*0.3, fade(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, a))
}

func (g *Game) drawToasts(screen *ebiten.Image) {
	views := g.toasts.Visible(g.now)
	for i, v := range views {
		const h = 40.0
		w := textWidth(v.Text, 1.5) + 40
		x := (float64(g.width) - w) / 2
		y := float64(g.height) - 140 - float64(len(views)-1-i)*(h+10) + v.Offset
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), h, fade(cardColor, v.Alpha), false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), h, 2, fade(pinkColor, v.Alpha), false)
		drawCentered(screen, v.Text, x+w/2, y+8, 1.5, fade(inkColor, v.Alpha))
	}
}
