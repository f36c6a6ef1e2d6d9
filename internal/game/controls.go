package game

import (
	"fmt"
	"image"

	"github.com/iburimskiy/fairy-celebration/internal/config"
	"github.com/iburimskiy/fairy-celebration/internal/gift"
)

type control int

const (
	ctlNone control = iota
	ctlMusic
	ctlChooseMusic
	ctlPrev
	ctlNext
	ctlWish
	ctlGiftBox
	ctlGiftEdit
	ctlGiftReset
	ctlRSVP
	ctlDot0 // first carousel dot; dot i is ctlDot0+i
)

var controlNames = map[control]string{
	ctlNone:        "none",
	ctlMusic:       "music",
	ctlChooseMusic: "choose-music",
	ctlPrev:        "prev",
	ctlNext:        "next",
	ctlWish:        "wish",
	ctlGiftBox:     "gift-box",
	ctlGiftEdit:    "gift-edit",
	ctlGiftReset:   "gift-reset",
	ctlRSVP:        "rsvp",
}

func (c control) String() string {
	if i, ok := c.dot(); ok {
		return fmt.Sprintf("dot-%d", i)
	}
	return controlNames[c]
}

func (c control) dot() (int, bool) {
	if c < ctlDot0 {
		return 0, false
	}
	return int(c - ctlDot0), true
}

// controlBox is a clickable area in screen space.
type controlBox struct {
	id      control
	rect    image.Rectangle
	label   string
	enabled bool
}

// Page sections, top to bottom.
const (
	secHero = iota
	secCountdown
	secMemories
	secMessages
	secGift
	secRSVP
	sectionCount
)

func sectionTop(i int) int { return i * config.SectionHeight }

// centered returns a w×h page rectangle centered horizontally at page y.
func (g *Game) centered(w, h, y int) image.Rectangle {
	x := (g.width - w) / 2
	return image.Rect(x, y, x+w, y+h)
}

func (g *Game) slideRect() image.Rectangle {
	w := min(g.width-240, 640)
	return g.centered(w, 300, sectionTop(secMemories)+150)
}

// Wish board geometry: the newest wishCards messages in two columns.
const (
	wishCards      = 4
	wishCardHeight = 150
	wishCardGap    = 20
)

// wishCardRects returns the page rectangles of the wish cards, newest
// first.
func (g *Game) wishCardRects() [wishCards]image.Rectangle {
	total := min(g.width-160, 900)
	cw := (total - wishCardGap) / 2
	left := (g.width - total) / 2
	top := sectionTop(secMessages) + 140
	var out [wishCards]image.Rectangle
	for i := range out {
		x := left + (i%2)*(cw+wishCardGap)
		y := top + (i/2)*(wishCardHeight+wishCardGap)
		out[i] = image.Rect(x, y, x+cw, y+wishCardHeight)
	}
	return out
}

func (g *Game) giftBoxRect() image.Rectangle {
	return g.centered(160, 140, sectionTop(secGift)+200)
}

// controls lists every control currently on screen.
func (g *Game) controls() []controlBox {
	var out []controlBox
	add := func(id control, page image.Rectangle, label string, enabled bool) {
		r := g.screenRect(page)
		if r.Overlaps(image.Rect(0, 0, g.width, g.height)) {
			out = append(out, controlBox{id: id, rect: r, label: label, enabled: enabled})
		}
	}

	slide := g.slideRect()
	mid := slide.Min.Y + slide.Dy()/2
	add(ctlPrev, image.Rect(slide.Min.X-70, mid-20, slide.Min.X-20, mid+20), "<", g.slides.CanPrev())
	add(ctlNext, image.Rect(slide.Max.X+20, mid-20, slide.Max.X+70, mid+20), ">", g.slides.CanNext())
	n := g.slides.Len()
	dotsX := g.width/2 - (n*24)/2
	for i := range n {
		x := dotsX + i*24
		add(ctlDot0+control(i), image.Rect(x, slide.Max.Y+30, x+14, slide.Max.Y+44), "", i != g.slides.Current())
	}

	add(ctlWish, g.centered(200, 40, sectionTop(secMessages)+540), "Leave a Wish", !g.prompts.Busy())

	box := g.giftBoxRect()
	add(ctlGiftBox, box, "", g.box.State() == gift.Closed)
	below := box.Max.Y + 80
	add(ctlGiftEdit, image.Rect(g.width/2-170, below, g.width/2-10, below+40), "Personalize", !g.prompts.Busy())
	if g.box.State() == gift.Revealed {
		add(ctlGiftReset, image.Rect(g.width/2+10, below, g.width/2+170, below+40), "Wrap Again", true)
	}

	if !g.rsvp.Sent {
		add(ctlRSVP, g.centered(160, 40, sectionTop(secRSVP)+360), "RSVP", !g.prompts.Busy())
	}

	// HUD controls do not scroll.
	bx := g.width - config.ButtonMargin - config.ButtonWidth
	by := g.height - config.ButtonMargin - config.ButtonHeight
	out = append(out,
		controlBox{id: ctlMusic, rect: image.Rect(bx, by, bx+config.ButtonWidth, by+config.ButtonHeight), label: "Music", enabled: true},
		controlBox{id: ctlChooseMusic, rect: image.Rect(bx-config.ButtonHeight-10, by, bx-10, by+config.ButtonHeight), label: "...", enabled: !g.prompts.Busy()},
	)
	return out
}

// controlAt returns the enabled control under x, y. HUD controls win.
func (g *Game) controlAt(x, y int) control {
	cs := g.controls()
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].enabled && inside(cs[i].rect, x, y) {
			return cs[i].id
		}
	}
	return ctlNone
}

// controlRect returns the on-screen rectangle of id.
func (g *Game) controlRect(id control) (image.Rectangle, bool) {
	for _, c := range g.controls() {
		if c.id == id {
			return c.rect, true
		}
	}
	return image.Rectangle{}, false
}

// sectionRect returns the on-screen rectangle of section i, if visible.
func (g *Game) sectionRect(i int) (image.Rectangle, bool) {
	r := g.screenRect(image.Rect(0, sectionTop(i), g.width, sectionTop(i)+config.SectionHeight))
	r = r.Intersect(image.Rect(0, 0, g.width, g.height))
	return r, !r.Empty()
}
