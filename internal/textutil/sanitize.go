// Package textutil measures and cleans text for the status line.
package textutil

import (
	"strings"
	"unicode"
)

// Invisible runes that can reorder or hide parts of a file name.
var invisibleRuneMarkers = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// Sanitize makes text safe to draw as a single terminal line. Control
// characters become '?', whitespace breaks become spaces and invisible
// direction runes are replaced with a visible marker.
func Sanitize(text string) string {
	clean := true
	for _, r := range text {
		if needsRewrite(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if marker, ok := invisibleRuneMarkers[r]; ok {
			b.WriteString(marker)
			continue
		}
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsRewrite(r rune) bool {
	if _, ok := invisibleRuneMarkers[r]; ok {
		return true
	}
	return unicode.IsControl(r)
}
