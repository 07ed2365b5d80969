package app

import (
	"log/slog"
	"time"

	"github.com/kk-code-lab/huaga/internal/state"
)

// Options configures the viewer.
type Options struct {
	// Path is opened first; the viewer starts empty without it.
	Path string
	// Tick is the animation and render cadence.
	Tick       time.Duration
	MaxPixels  int
	MaxFrames  int
	SkipHidden bool
	// Watch reloads the current image when its file changes.
	Watch bool
	// Fit scales the first image to the terminal instead of 1:1.
	Fit    bool
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Tick <= 0 {
		o.Tick = state.DefaultTickInterval
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
