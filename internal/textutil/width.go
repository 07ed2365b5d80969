package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// ClusterWidth reports the columns taken by one grapheme cluster as returned
// by uniseg. A lone rune is measured with runewidth so East Asian ambiguous
// characters follow the terminal locale; emoji and combining sequences keep
// uniseg's width. The result is at least one column.
func ClusterWidth(cluster string, segmented int) int {
	w := segmented
	if r, size := utf8.DecodeRuneInString(cluster); size == len(cluster) && r != utf8.RuneError {
		w = runewidth.RuneWidth(r)
	}
	if w < 1 {
		w = 1
	}
	return w
}

// DisplayWidth reports the terminal width of text.
func DisplayWidth(text string) int {
	width := 0
	state := -1
	for len(text) > 0 {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		width += ClusterWidth(cluster, w)
	}
	return width
}

// Truncate shortens text to at most max columns without splitting a
// grapheme cluster. Text that has to be cut ends in Ellipsis.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if DisplayWidth(text) <= max {
		return text
	}
	limit := max - DisplayWidth(Ellipsis)
	var b strings.Builder
	used := 0
	state := -1
	for len(text) > 0 {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		w = ClusterWidth(cluster, w)
		if used+w > limit {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	if limit < 0 {
		return ""
	}
	b.WriteString(Ellipsis)
	return b.String()
}
