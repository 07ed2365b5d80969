package imaging

import (
	"fmt"
	"image"
	"time"

	"github.com/kk-code-lab/huaga/internal/anim"
)

// Animation is a multi-frame image with every frame already composited onto
// the full canvas.
type Animation struct {
	frames []*image.RGBA
	delays []time.Duration
	loops  int
	bounds image.Rectangle
}

// NewAnimation builds an animation from composited frames. Every frame must
// share the bounds of the first and have a delay.
func NewAnimation(frames []*image.RGBA, delays []time.Duration, loops int) (*Animation, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if len(delays) != len(frames) {
		return nil, fmt.Errorf("%w: %d frames, %d delays", ErrInvalidSize, len(frames), len(delays))
	}
	bounds := frames[0].Bounds()
	for i, frame := range frames {
		if frame == nil || frame.Bounds() != bounds {
			return nil, fmt.Errorf("%w: frame %d does not match canvas %v", ErrInvalidSize, i, bounds)
		}
	}
	return &Animation{frames: frames, delays: delays, loops: loops, bounds: bounds}, nil
}

func (a *Animation) FrameCount() int           { return len(a.frames) }
func (a *Animation) Frame(i int) image.Image   { return a.frames[i] }
func (a *Animation) Delay(i int) time.Duration { return a.delays[i] }
func (a *Animation) LoopCount() int            { return a.loops }
func (a *Animation) Bounds() image.Rectangle   { return a.bounds }

// NewCursor starts playback at now.
func (a *Animation) NewCursor(now time.Time) *anim.Cursor {
	return anim.NewCursor(a, now)
}
