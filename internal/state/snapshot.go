package state

import (
	"image"

	"github.com/kk-code-lab/huaga/internal/imaging"
	"github.com/kk-code-lab/huaga/internal/zoom"
)

// Snapshot is a copy of the view for status display.
type Snapshot struct {
	Path     string
	Anchor   int
	Natural  int
	Frame    int
	Frames   int
	Animated bool
	Stopped  bool // a finite animation has played all its loops
	Dirty    bool
	Rendered image.Rectangle
	Info     imaging.Info
}

// Zoom returns the displayed scale, 1 meaning natural size.
func (s Snapshot) Zoom() float64 {
	if s.Natural <= 0 || s.Anchor <= 0 {
		return 0
	}
	return float64(s.Anchor) / float64(s.Natural)
}

// Loaded reports whether an image is open.
func (s Snapshot) Loaded() bool {
	return s.Path != ""
}

// Snapshot copies the current view under the lock.
func (v *ViewState) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := Snapshot{
		Path:     v.currentPath,
		Anchor:   v.anchor,
		Dirty:    v.dirty,
		Rendered: v.rendered,
		Info:     v.info,
		Frames:   1,
	}
	if v.still != nil {
		snap.Natural = zoom.RefDim(v.still.Bounds())
	}
	if v.cursor != nil {
		snap.Animated = true
		snap.Frame = v.cursor.Index()
		snap.Frames = v.animation.FrameCount()
		snap.Stopped = v.cursor.Done()
	}
	return snap
}
