// Package carousel tracks the visible slide of the memories gallery.
package carousel

type Carousel struct {
	n       int
	current int
}

func New(n int) *Carousel {
	return &Carousel{n: max(n, 0)}
}

func (c *Carousel) Len() int     { return c.n }
func (c *Carousel) Current() int { return c.current }

// GoTo moves to slide i, clamped to the valid range.
func (c *Carousel) GoTo(i int) {
	if c.n == 0 {
		c.current = 0
		return
	}
	c.current = min(max(i, 0), c.n-1)
}

func (c *Carousel) Next() { c.GoTo(c.current + 1) }
func (c *Carousel) Prev() { c.GoTo(c.current - 1) }

func (c *Carousel) CanPrev() bool { return c.current > 0 }
func (c *Carousel) CanNext() bool { return c.current < c.n-1 }

// Offset is the horizontal shift of the slide strip in slide widths.
func (c *Carousel) Offset() float64 { return -float64(c.current) }
