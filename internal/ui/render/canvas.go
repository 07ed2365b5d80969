package render

import (
	"image"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// Canvas is the display sink. It keeps the latest rendered bitmap for the
// terminal loop and may be fed from any goroutine.
type Canvas struct {
	mu      sync.Mutex
	frame   *image.RGBA
	version uint64
	notify  func()
}

// NewCanvas returns an empty canvas. notify is called after every new
// bitmap, outside the canvas lock.
func NewCanvas(notify func()) *Canvas {
	return &Canvas{notify: notify}
}

// Display stores img as the current frame.
func (c *Canvas) Display(img image.Image) {
	if img == nil {
		return
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	}

	c.mu.Lock()
	c.frame = rgba
	c.version++
	notify := c.notify
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Frame returns the current bitmap and how many bitmaps have been shown.
func (c *Canvas) Frame() (*image.RGBA, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame, c.version
}
