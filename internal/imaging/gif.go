package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"time"
)

func (c *Codec) decodeGIF(data []byte) (*Image, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, ErrNoFrames
	}

	frames, delays, err := c.composeGIF(g)
	if err != nil {
		return nil, err
	}
	if len(frames) == 1 {
		return &Image{Still: frames[0]}, nil
	}
	animation, err := NewAnimation(frames, delays, g.LoopCount)
	if err != nil {
		return nil, err
	}
	return &Image{Animation: animation}, nil
}

// composeGIF renders every frame onto a full-size canvas, applying each
// frame's disposal before the next one is drawn.
func (c *Codec) composeGIF(g *gif.GIF) ([]*image.RGBA, []time.Duration, error) {
	width, height := g.Config.Width, g.Config.Height
	if width <= 0 || height <= 0 {
		b := g.Image[0].Bounds()
		width, height = b.Dx(), b.Dy()
	}
	if width <= 0 || height <= 0 {
		return nil, nil, ErrInvalidSize
	}

	limit := len(g.Image)
	if c.opts.MaxFrames > 0 && c.opts.MaxFrames < limit {
		limit = c.opts.MaxFrames
	}
	// Every frame is kept composited, so the whole stack counts against the
	// pixel budget, with some headroom for short clips.
	if exceedsPixels(width, height*limit, c.opts.MaxPixels*4) {
		return nil, nil, ErrTooLarge
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	prev := image.NewRGBA(canvas.Bounds())
	bg := backgroundColor(g)

	frames := make([]*image.RGBA, 0, limit)
	delays := make([]time.Duration, 0, limit)
	for i := 0; i < limit; i++ {
		frame := g.Image[i]
		disposal := byte(gif.DisposalNone)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			copy(prev.Pix, canvas.Pix)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		snapshot := image.NewRGBA(canvas.Bounds())
		copy(snapshot.Pix, canvas.Pix)
		frames = append(frames, snapshot)
		delays = append(delays, c.frameDelay(g, i))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			copy(canvas.Pix, prev.Pix)
		}
	}
	return frames, delays, nil
}

func (c *Codec) frameDelay(g *gif.GIF, idx int) time.Duration {
	var delay time.Duration
	if idx < len(g.Delay) {
		delay = time.Duration(g.Delay[idx]) * 10 * time.Millisecond
	}
	if delay <= 0 {
		delay = c.opts.DefaultDelay
	}
	return c.opts.clampDelay(delay)
}

func backgroundColor(g *gif.GIF) color.Color {
	pal, ok := g.Config.ColorModel.(color.Palette)
	if !ok || len(pal) == 0 {
		return color.Transparent
	}
	idx := int(g.BackgroundIndex)
	if idx < 0 || idx >= len(pal) {
		return color.Transparent
	}
	return pal[idx]
}
