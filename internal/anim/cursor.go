// Package anim tracks the playback position of a multi-frame image against
// wall-clock time.
package anim

import (
	"image"
	"time"
)

// Source is a decoded multi-frame image.
type Source interface {
	FrameCount() int
	Frame(i int) image.Image
	Delay(i int) time.Duration
	// LoopCount follows image/gif: 0 loops forever, -1 plays once and n > 0
	// plays n+1 times.
	LoopCount() int
}

// Cursor is the current position within a Source. It is not safe for
// concurrent use; the owner serializes access.
type Cursor struct {
	src       Source
	frame     int
	nextAt    time.Time
	forever   bool
	wrapsLeft int
	finished  bool
}

// minDelay keeps a zero-delay source from spinning Advance.
const minDelay = 10 * time.Millisecond

// NewCursor returns a cursor positioned on the first frame at now.
func NewCursor(src Source, now time.Time) *Cursor {
	c := &Cursor{src: src}
	c.nextAt = now.Add(c.delay(0))
	switch loops := src.LoopCount(); {
	case loops == 0:
		c.forever = true
	case loops > 0:
		c.wrapsLeft = loops
	}
	if src.FrameCount() < 2 {
		c.finished = true
	}
	return c
}

// Advance moves the cursor to the frame due at now. It reports whether the
// current frame changed.
func (c *Cursor) Advance(now time.Time) bool {
	if c.finished || now.Before(c.nextAt) {
		return false
	}

	if cycle := c.cycle(); cycle > 0 && now.Sub(c.nextAt) > cycle {
		// Too far behind; rebase instead of replaying every missed frame.
		c.nextAt = now
	}

	moved := false
	for !now.Before(c.nextAt) {
		next := c.frame + 1
		if next >= c.src.FrameCount() {
			if !c.consumeLoop() {
				c.finished = true
				break
			}
			next = 0
		}
		c.frame = next
		c.nextAt = c.nextAt.Add(c.delay(next))
		moved = true
	}
	return moved
}

// CurrentFrame returns the bitmap at the cursor position.
func (c *Cursor) CurrentFrame() image.Image {
	return c.src.Frame(c.frame)
}

// Index returns the zero-based index of the current frame.
func (c *Cursor) Index() int {
	return c.frame
}

// Done reports whether playback stopped on the last frame.
func (c *Cursor) Done() bool {
	return c.finished
}

func (c *Cursor) consumeLoop() bool {
	if c.forever {
		return true
	}
	if c.wrapsLeft > 0 {
		c.wrapsLeft--
		return true
	}
	return false
}

func (c *Cursor) delay(i int) time.Duration {
	if d := c.src.Delay(i); d > minDelay {
		return d
	}
	return minDelay
}

func (c *Cursor) cycle() time.Duration {
	var total time.Duration
	for i := 0; i < c.src.FrameCount(); i++ {
		total += c.delay(i)
	}
	return total
}
