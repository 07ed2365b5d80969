package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background tcell.Color
	StatusBg   tcell.Color
	StatusFg   tcell.Color
	DimFg      tcell.Color
	ErrorFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorDefault,
		StatusBg:   tcell.Color236,
		StatusFg:   tcell.Color252,
		DimFg:      tcell.ColorLightSlateGray,
		ErrorFg:    tcell.Color203,
	}
}
