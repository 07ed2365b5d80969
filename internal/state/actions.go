package state

import (
	"time"

	"github.com/kk-code-lab/huaga/internal/navigator"
)

// Action is the base interface for all state mutations
type Action interface{}

// ===== INPUT ACTIONS =====

type OpenFileAction struct {
	Path string
}

// ScrollAction carries one wheel sample. Modifier reports whether the zoom
// modifier (Ctrl) was held.
type ScrollAction struct {
	Delta    float64
	Modifier bool
}

type NavigateAction struct {
	Direction navigator.Direction
}

// ===== VIEW ACTIONS =====

type ResetZoomAction struct{}
type FitZoomAction struct {
	Width  int
	Height int
}
type ReloadAction struct{}
type TickAction struct {
	Now time.Time
}

// ===== APPLICATION ACTIONS =====

// PanAction moves the visible part of the bitmap by DX, DY pixels.
type PanAction struct {
	DX int
	DY int
}
type ResizeAction struct {
	Width  int
	Height int
}
type SuspendAction struct{}
type QuitAction struct{}
