package imaging

import (
	"errors"
	"time"
)

var (
	ErrDecode      = errors.New("cannot decode image")
	ErrScale       = errors.New("cannot scale image")
	ErrTooLarge    = errors.New("image too large")
	ErrNoFrames    = errors.New("image has no frames")
	ErrInvalidSize = errors.New("image has invalid size")
)

// Options bounds what the codec is willing to decode and produce.
// Zero values fall back to DefaultOptions.
type Options struct {
	MaxBytes     int64
	MaxPixels    int
	MaxFrames    int
	MinDelay     time.Duration
	MaxDelay     time.Duration
	DefaultDelay time.Duration
}

func DefaultOptions() Options {
	return Options{
		MaxBytes:     256 << 20,
		MaxPixels:    64 << 20,
		MaxFrames:    2000,
		MinDelay:     20 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		DefaultDelay: 100 * time.Millisecond,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxBytes <= 0 {
		o.MaxBytes = def.MaxBytes
	}
	if o.MaxPixels <= 0 {
		o.MaxPixels = def.MaxPixels
	}
	if o.MaxFrames <= 0 {
		o.MaxFrames = def.MaxFrames
	}
	if o.MinDelay <= 0 {
		o.MinDelay = def.MinDelay
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = def.MaxDelay
	}
	if o.DefaultDelay <= 0 {
		o.DefaultDelay = def.DefaultDelay
	}
	return o
}

func (o Options) clampDelay(delay time.Duration) time.Duration {
	if delay < o.MinDelay {
		return o.MinDelay
	}
	if delay > o.MaxDelay {
		return o.MaxDelay
	}
	return delay
}

func exceedsPixels(width, height, maxPixels int) bool {
	if maxPixels <= 0 {
		return false
	}
	return int64(width)*int64(height) > int64(maxPixels)
}
