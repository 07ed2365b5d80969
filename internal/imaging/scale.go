package imaging

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Rescale resamples src to width x height with a bilinear filter.
func (c *Codec) Rescale(src image.Image, width, height int) (image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no source bitmap", ErrScale)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrScale, width, height)
	}
	if exceedsPixels(width, height, c.opts.MaxPixels) {
		return nil, fmt.Errorf("%w: target %dx%d: %w", ErrScale, width, height, ErrTooLarge)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if src.Bounds().Size() == dst.Bounds().Size() {
		xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
		return dst, nil
	}
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
