// Package zoom maps raw scroll deltas onto a bounded, decelerating change of
// the zoom anchor size.
//
// The anchor size is the target reference dimension (min of width/height) of
// the displayed bitmap. The ratio natural/anchor is 1 at natural size, grows
// when zoomed out and shrinks when zoomed in.
package zoom

import (
	"image"
	"math"
)

const (
	// MinRatio and MaxRatio bound the ratio natural/anchor.
	MinRatio = 0.1
	MaxRatio = 4.0
	// Step is the fraction of the anchor moved by one undamped scroll event.
	Step = 0.03

	hyperFloor = 0.1
)

// RefDim returns the reference dimension of a bitmap: min(width, height).
func RefDim(b image.Rectangle) int {
	w, h := b.Dx(), b.Dy()
	if w < h {
		return w
	}
	return h
}

// Bounds returns the effective ratio bounds. They widen to include ratio so
// an image already outside the fixed bounds can still be brought back.
func Bounds(ratio float64) (lo, hi float64) {
	return math.Min(ratio, MinRatio), math.Max(ratio, MaxRatio)
}

// Shape returns the signed speed factor for one scroll sample.
//
// Moving toward ratio 1 is never damped. Moving away from it is damped by a
// hyperbolic factor that reaches zero at (and just inside) lo and hi.
func Shape(ratio, dratio, lo, hi float64) float64 {
	direction := sign(dratio)

	hyper := 1 - 1/((ratio-lo)*(hi-ratio))
	if hyper < hyperFloor {
		hyper = 0
	}

	if (ratio-1)*dratio >= 0 {
		return direction
	}
	return direction * hyper
}

// Delta returns the unclamped change of the anchor size for rawDelta.
// It returns 0 when anchor or natural is not positive.
func Delta(natural, anchor int, rawDelta float64) float64 {
	if anchor == 0 || natural <= 0 {
		return 0
	}
	cur := float64(anchor)
	ratio := float64(natural) / cur
	dratio := rawDelta / cur
	lo, hi := Bounds(ratio)
	return cur * Step * Shape(ratio, dratio, lo, hi)
}

// Apply returns the new anchor size after one scroll sample.
//
// The result is clipped to the int range and then bounded per step relative to
// the current anchor, so one sample can never jump past MinRatio/MaxRatio of
// it. A nonzero step that rounds to nothing still moves the anchor by one.
// An uninitialized anchor (0) is returned unchanged.
func Apply(natural, anchor int, rawDelta float64) int {
	if anchor == 0 || natural <= 0 {
		return anchor
	}
	cur := float64(anchor)
	delta := Delta(natural, anchor, rawDelta)
	proposed := clip(cur+delta, math.MinInt+1, math.MaxInt)

	var next float64
	if delta >= 0 {
		next = math.Min(MaxRatio*cur, proposed)
	} else {
		next = math.Max(MinRatio*cur, proposed)
	}
	result := toInt(next)
	if result == anchor && delta != 0 {
		result = nudge(natural, anchor, delta)
	}
	return result
}

// nudge moves a small anchor by one pixel when the rounded step would
// otherwise leave it unchanged. The move stays within the ratio bounds and
// the per-step clamp, and never drops below 1.
func nudge(natural, anchor int, delta float64) int {
	next := anchor + 1
	if delta < 0 {
		next = anchor - 1
	}
	cur := float64(anchor)
	step := float64(next)
	if next < 1 || step < MinRatio*cur || step > MaxRatio*cur {
		return anchor
	}
	lo, hi := Bounds(float64(natural) / cur)
	if r := float64(natural) / step; r < lo || r > hi {
		return anchor
	}
	return next
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clip(v float64, lo, hi int) float64 {
	return math.Max(float64(lo), math.Min(float64(hi), v))
}

func toInt(v float64) int {
	v = math.Round(v)
	if v >= float64(math.MaxInt) {
		return math.MaxInt
	}
	if v <= float64(math.MinInt+1) {
		return math.MinInt + 1
	}
	return int(v)
}
