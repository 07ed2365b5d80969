package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/huaga/internal/state"
	textutil "github.com/kk-code-lab/huaga/internal/textutil"
	"github.com/rivo/uniseg"
)

func (r *Renderer) drawStatusLine(snap statepkg.Snapshot, status Status, w, y int) {
	style := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	right := formatStatusRight(status)
	rightWidth := 0
	if right != "" {
		right = textutil.Truncate(right, w/2)
		rightWidth = textutil.DisplayWidth(right)
	}

	leftWidth := w - rightWidth
	if rightWidth > 0 {
		leftWidth--
	}
	leftText := formatStatusLeft(snap)
	if pan := formatPan(r.Offset()); pan != "" && snap.Loaded() {
		leftText += statusSeparator + pan
	}
	left := textutil.Truncate(" "+leftText, leftWidth)
	r.drawTextLine(0, y, leftWidth, left, style.Bold(snap.Loaded()))

	if rightWidth > 0 {
		rightStyle := style.Foreground(r.theme.DimFg)
		if status.Err != nil {
			rightStyle = style.Foreground(r.theme.ErrorFg)
		}
		r.drawTextLine(w-rightWidth, y, rightWidth, right, rightStyle)
	}
}

// drawTextLine draws text one grapheme cluster per cell and returns the
// column after the last one drawn.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	state := -1
	for len(text) > 0 {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		width = textutil.ClusterWidth(cluster, width)
		if x-startX+width > maxWidth {
			break
		}
		runes := []rune(cluster)
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += width
	}
	return x
}
