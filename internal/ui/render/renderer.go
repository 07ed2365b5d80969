package render

import (
	"image"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/huaga/internal/state"
)

// upperHalf draws the top pixel as foreground and the bottom one as
// background, giving two image rows per terminal row.
const upperHalf = '▀'

// Status is the shell-side part of the status line.
type Status struct {
	Message string
	Err     error
}

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	canvas *Canvas

	// Pan offsets in bitmap pixels. They reset whenever the path changes.
	panX, panY int
	path       string
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, canvas *Canvas) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
		canvas: canvas,
	}
}

// ViewportPixels returns the image area in bitmap pixels.
func (r *Renderer) ViewportPixels() (int, int) {
	if r.screen == nil {
		return 0, 0
	}
	w, h := r.screen.Size()
	rows := h - 1
	if w <= 0 || rows <= 0 {
		return 0, 0
	}
	return w, rows * 2
}

// Pan shifts the visible region, clamped to the current bitmap.
func (r *Renderer) Pan(dx, dy int) bool {
	frame, _ := r.canvas.Frame()
	if frame == nil {
		return false
	}
	viewW, viewH := r.ViewportPixels()
	b := frame.Bounds()
	x := clampPan(r.panX+dx, b.Dx(), viewW)
	y := clampPan(r.panY+dy, b.Dy(), viewH)
	if x == r.panX && y == r.panY {
		return false
	}
	r.panX, r.panY = x, y
	return true
}

// Offset returns the pan offsets.
func (r *Renderer) Offset() (int, int) {
	return r.panX, r.panY
}

// Render draws the bitmap and the status line.
func (r *Renderer) Render(snap statepkg.Snapshot, status Status) {
	r.screen.Clear()

	if snap.Path != r.path {
		r.path = snap.Path
		r.panX, r.panY = 0, 0
	}

	w, h := r.screen.Size()
	if frame, _ := r.canvas.Frame(); frame != nil && h > 1 {
		r.drawImage(frame, w, h-1)
	}
	if h > 0 {
		r.drawStatusLine(snap, status, w, h-1)
	}

	r.screen.Show()
}

func (r *Renderer) drawImage(frame *image.RGBA, cols, rows int) {
	viewW, viewH := cols, rows*2
	b := frame.Bounds()
	r.panX = clampPan(r.panX, b.Dx(), viewW)
	r.panY = clampPan(r.panY, b.Dy(), viewH)

	// A bitmap smaller than the viewport is centered instead of panned.
	originX, originY := -r.panX, -r.panY
	if b.Dx() < viewW {
		originX = (viewW - b.Dx()) / 2
	}
	if b.Dy() < viewH {
		originY = (viewH - b.Dy()) / 2
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, topOK := pixelAt(frame, cx-originX, 2*cy-originY)
			bottom, bottomOK := pixelAt(frame, cx-originX, 2*cy+1-originY)
			if !topOK && !bottomOK {
				continue
			}
			style := tcell.StyleDefault.Foreground(r.theme.Background).Background(r.theme.Background)
			if topOK {
				style = style.Foreground(top)
			}
			if bottomOK {
				style = style.Background(bottom)
			}
			r.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}

func pixelAt(frame *image.RGBA, x, y int) (tcell.Color, bool) {
	b := frame.Bounds()
	x += b.Min.X
	y += b.Min.Y
	if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y {
		return tcell.ColorDefault, false
	}
	// Premultiplied values are already composited over black.
	c := frame.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)), true
}

func clampPan(offset, size, view int) int {
	limit := size - view
	if limit < 0 {
		limit = 0
	}
	if offset > limit {
		return limit
	}
	if offset < 0 {
		return 0
	}
	return offset
}
