package state

import (
	"fmt"
)

// StateReducer applies actions to a ViewState.
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies action to view and reports whether the view changed in a
// way that needs a redraw.
func (r *StateReducer) Reduce(view *ViewState, action Action) (bool, error) {
	if view == nil {
		return false, fmt.Errorf("reduce %T: nil view", action)
	}

	switch a := action.(type) {

	case OpenFileAction:
		if err := view.OpenImage(a.Path); err != nil {
			return false, err
		}
		return true, nil

	case ScrollAction:
		// Zoom only while the modifier is held; plain scrolling belongs to
		// the display.
		if !a.Modifier || a.Delta == 0 {
			return false, nil
		}
		return view.ApplyScroll(a.Delta), nil

	case NavigateAction:
		if _, err := view.Navigate(a.Direction); err != nil {
			return false, err
		}
		return true, nil

	case ResetZoomAction:
		return view.ResetZoom(), nil

	case FitZoomAction:
		return view.FitZoom(a.Width, a.Height), nil

	case ReloadAction:
		if err := view.Reload(); err != nil {
			return false, err
		}
		return true, nil

	case TickAction:
		return view.Tick(a.Now), nil

	case PanAction, ResizeAction, SuspendAction, QuitAction:
		// The shell owns the terminal; nothing to change here.
		return false, nil
	}

	return false, fmt.Errorf("unknown action %T", action)
}
