package state

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/kk-code-lab/huaga/internal/anim"
	"github.com/kk-code-lab/huaga/internal/imaging"
	"github.com/kk-code-lab/huaga/internal/navigator"
	"github.com/kk-code-lab/huaga/internal/zoom"
)

// Codec decodes image files and resamples bitmaps.
type Codec interface {
	Decode(path string) (*imaging.Image, error)
	Rescale(src image.Image, width, height int) (image.Image, error)
}

// Display receives every freshly rendered bitmap.
type Display interface {
	Display(img image.Image)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(img image.Image)

func (f DisplayFunc) Display(img image.Image) { f(img) }

// ViewState is the shared viewer state. Every exported method holds mu for
// its whole duration, so the animation/cursor pair and the dirty flag always
// change together.
type ViewState struct {
	mu sync.Mutex

	codec   Codec
	display Display
	nav     *navigator.Navigator
	now     func() time.Time
	logger  *slog.Logger

	// anchor is the target reference dimension; 0 until the first image.
	anchor      int
	dirty       bool
	currentPath string
	still       image.Image
	animation   *imaging.Animation
	cursor      *anim.Cursor
	info        imaging.Info
	rendered    image.Rectangle
}

// Option configures a ViewState.
type Option func(*ViewState)

func WithNavigator(nav *navigator.Navigator) Option {
	return func(v *ViewState) { v.nav = nav }
}

func WithClock(now func() time.Time) Option {
	return func(v *ViewState) { v.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(v *ViewState) { v.logger = logger }
}

// NewViewState returns an empty, clean view.
func NewViewState(codec Codec, display Display, opts ...Option) *ViewState {
	v := &ViewState{
		codec:   codec,
		display: display,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.nav == nil {
		v.nav = navigator.New(nil)
	}
	if v.logger == nil {
		v.logger = slog.New(slog.DiscardHandler)
	}
	return v
}

// OpenImage decodes path and makes it the current image. On failure the
// state is left untouched.
func (v *ViewState) OpenImage(path string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.openLocked(path)
}

func (v *ViewState) openLocked(path string) error {
	if path == "" {
		return fmt.Errorf("%w: %w", ErrDecode, navigator.ErrNoCurrentPath)
	}
	img, err := v.codec.Decode(path)
	if err != nil {
		if !errors.Is(err, ErrDecode) {
			err = fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return err
	}
	if img == nil || (img.Still == nil && img.Animation == nil) {
		return fmt.Errorf("%w: %s: no bitmap", ErrDecode, path)
	}

	if img.Animation != nil {
		cursor := img.Animation.NewCursor(v.now())
		v.animation = img.Animation
		v.cursor = cursor
		v.still = cursor.CurrentFrame()
	} else {
		v.animation = nil
		v.cursor = nil
		v.still = img.Still
	}

	// Seeded once; later images keep the absolute size the user chose.
	if v.anchor == 0 {
		v.anchor = zoom.RefDim(v.still.Bounds())
	}
	v.currentPath = path
	v.info = img.Info
	v.dirty = true
	v.logger.Debug("image opened", "path", path, "animated", v.animation != nil, "anchor", v.anchor)
	return nil
}

// ApplyScroll feeds one raw scroll delta through the zoom curve. It is
// ignored until an image is loaded and reports whether it was applied.
func (v *ViewState) ApplyScroll(rawDelta float64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.still == nil || v.anchor == 0 {
		return false
	}
	natural := zoom.RefDim(v.still.Bounds())
	v.anchor = zoom.Apply(natural, v.anchor, rawDelta)
	v.dirty = true
	return true
}

// ResetZoom puts the anchor back at the natural size of the current image.
func (v *ViewState) ResetZoom() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.still == nil {
		return false
	}
	natural := zoom.RefDim(v.still.Bounds())
	if natural <= 0 {
		return false
	}
	v.anchor = natural
	v.dirty = true
	return true
}

// FitZoom sets the anchor so the whole current image fits in a
// width x height box.
func (v *ViewState) FitZoom(width, height int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.still == nil || width <= 0 || height <= 0 {
		return false
	}
	b := v.still.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return false
	}
	scale := math.Min(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	anchor := int(math.Round(float64(zoom.RefDim(b)) * scale))
	if anchor < 1 {
		anchor = 1
	}
	v.anchor = anchor
	v.dirty = true
	return true
}

// Navigate opens the first decodable candidate in direction dir and returns
// its path. When nothing opens it returns ErrNoNavigableImage and the state
// is unchanged.
func (v *ViewState) Navigate(dir navigator.Direction) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	candidates, err := v.nav.Candidates(v.currentPath, dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoNavigableImage, err)
	}
	for _, candidate := range candidates {
		if err := v.openLocked(candidate); err != nil {
			v.logger.Debug("skipping candidate", "direction", dir.String(), "path", candidate, "err", err)
			continue
		}
		return candidate, nil
	}
	return "", ErrNoNavigableImage
}

// Reload decodes the current path again. The zoom anchor is kept.
func (v *ViewState) Reload() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.openLocked(v.currentPath)
}

// Tick advances a running animation to now and reports whether the frame
// changed. Nothing else moves an animation forward.
func (v *ViewState) Tick(now time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cursor == nil || !v.cursor.Advance(now) {
		return false
	}
	v.still = v.cursor.CurrentFrame()
	v.dirty = true
	return true
}

// ReconcileRender rescales and displays the current bitmap when it is
// stale. On failure the view stays dirty and the last bitmap stays shown.
func (v *ViewState) ReconcileRender() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.dirty || v.still == nil {
		return nil
	}

	width, height, err := targetSize(v.still.Bounds(), v.anchor)
	if err != nil {
		return err
	}
	scaled, err := v.codec.Rescale(v.still, width, height)
	if err != nil {
		if !errors.Is(err, ErrScale) {
			err = fmt.Errorf("%w: %w", ErrScale, err)
		}
		return err
	}

	if v.display != nil {
		v.display.Display(scaled)
	}
	v.rendered = scaled.Bounds()
	v.dirty = false
	return nil
}

// targetSize scales bounds so that its reference dimension becomes anchor.
func targetSize(bounds image.Rectangle, anchor int) (int, int, error) {
	natural := zoom.RefDim(bounds)
	if natural <= 0 || anchor <= 0 {
		return 0, 0, fmt.Errorf("%w: reference %d, anchor %d", ErrScale, natural, anchor)
	}
	scale := float64(anchor) / float64(natural)
	width := math.Round(float64(bounds.Dx()) * scale)
	height := math.Round(float64(bounds.Dy()) * scale)
	if width < 1 || height < 1 || width > math.MaxInt32 || height > math.MaxInt32 {
		return 0, 0, fmt.Errorf("%w: target %.0fx%.0f", ErrScale, width, height)
	}
	return int(width), int(height), nil
}
