// Package imaging decodes image files into still bitmaps or composited
// animations and resamples bitmaps to a target size.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Image is the result of decoding one file. Exactly one of Still and
// Animation is set.
type Image struct {
	Still     image.Image
	Animation *Animation
	Info      Info
}

// Animated reports whether the image has more than one frame.
func (img *Image) Animated() bool {
	return img != nil && img.Animation != nil
}

// Codec decodes and rescales images within the limits of its Options.
type Codec struct {
	opts Options
}

// NewCodec returns a codec using opts, with zero fields defaulted.
func NewCodec(opts Options) *Codec {
	return &Codec{opts: opts.withDefaults()}
}

// Decode reads path and decodes it. All failures wrap ErrDecode.
func (c *Codec) Decode(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrDecode)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrDecode, path)
	}

	data, err := readAllLimit(file, c.opts.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	img, format, err := c.decodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	img.Info = readInfo(data, format, img.bounds(), stat)
	if img.Animation != nil {
		img.Info.Frames = img.Animation.FrameCount()
	}
	return img, nil
}

func (c *Codec) decodeBytes(data []byte) (*Image, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, "", ErrInvalidSize
	}
	if exceedsPixels(cfg.Width, cfg.Height, c.opts.MaxPixels) {
		return nil, "", fmt.Errorf("%w: pixels=%d limit=%d", ErrTooLarge, cfg.Width*cfg.Height, c.opts.MaxPixels)
	}

	if format == "gif" {
		img, err := c.decodeGIF(data)
		return img, format, err
	}

	still, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	return &Image{Still: still}, format, nil
}

func (img *Image) bounds() image.Rectangle {
	if img.Animation != nil {
		return img.Animation.Bounds()
	}
	if img.Still != nil {
		return img.Still.Bounds()
	}
	return image.Rectangle{}
}

func readAllLimit(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}
	lr := &io.LimitedReader{R: r, N: maxBytes + 1}
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}
