package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/huaga/internal/navigator"
	statepkg "github.com/kk-code-lab/huaga/internal/state"
)

func drain(ch chan statepkg.Action) []statepkg.Action {
	var out []statepkg.Action
	for {
		select {
		case a := <-ch:
			out = append(out, a)
		default:
			return out
		}
	}
}

func expectSingle(t *testing.T, ch chan statepkg.Action, want statepkg.Action) {
	t.Helper()
	got := drain(ch)
	if len(got) != 1 {
		t.Fatalf("expected one action %#v, got %#v", want, got)
	}
	if got[0] != want {
		t.Fatalf("expected %#v, got %#v", want, got[0])
	}
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), statepkg.NavigateAction{Direction: navigator.Next}},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), statepkg.NavigateAction{Direction: navigator.Next}},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), statepkg.NavigateAction{Direction: navigator.Next}},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), statepkg.NavigateAction{Direction: navigator.Previous}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), statepkg.NavigateAction{Direction: navigator.Previous}},
		{"reset", tcell.NewEventKey(tcell.KeyRune, '0', tcell.ModNone), statepkg.ResetZoomAction{}},
		{"reload", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), statepkg.ReloadAction{}},
		{"zoom in", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), statepkg.ScrollAction{Delta: 1, Modifier: true}},
		{"zoom out", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), statepkg.ScrollAction{Delta: -1, Modifier: true}},
		{"pan left", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), statepkg.PanAction{DX: -PanStep}},
		{"pan down", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), statepkg.PanAction{DY: PanStep}},
		{"page up pan", tcell.NewEventKey(tcell.KeyRune, 'K', tcell.ModNone), statepkg.PanAction{DY: -PanPage}},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), statepkg.PanAction{DX: PanStep}},
		{"shift arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), statepkg.PanAction{DY: -PanPage}},
		{"suspend", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), statepkg.SuspendAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actionChan := make(chan statepkg.Action, 4)
			handler := NewInputHandler(actionChan)
			if !handler.ProcessEvent(tt.ev) {
				t.Fatalf("handler asked to quit")
			}
			expectSingle(t, actionChan, tt.want)
		})
	}
}

func TestQuitKeys(t *testing.T) {
	events := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range events {
		actionChan := make(chan statepkg.Action, 1)
		handler := NewInputHandler(actionChan)
		if handler.ProcessEvent(ev) {
			t.Fatalf("%v should quit", ev.Name())
		}
		expectSingle(t, actionChan, statepkg.QuitAction{})
	}
}

func TestFitUsesViewport(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))
	expectSingle(t, actionChan, statepkg.FitZoomAction{})

	handler.SetViewport(func() (int, int) { return 80, 46 })
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))
	expectSingle(t, actionChan, statepkg.FitZoomAction{Width: 80, Height: 46})
}

func TestWheelCarriesModifier(t *testing.T) {
	actionChan := make(chan statepkg.Action, 2)
	handler := NewInputHandler(actionChan)

	handler.ProcessEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModCtrl))
	expectSingle(t, actionChan, statepkg.ScrollAction{Delta: 1, Modifier: true})

	handler.ProcessEvent(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	expectSingle(t, actionChan, statepkg.ScrollAction{Delta: -1})

	handler.ProcessEvent(tcell.NewEventMouse(0, 0, tcell.WheelRight, tcell.ModNone))
	expectSingle(t, actionChan, statepkg.PanAction{DX: PanStep})
}

func TestClicksNavigateOnPressOnly(t *testing.T) {
	actionChan := make(chan statepkg.Action, 4)
	handler := NewInputHandler(actionChan)

	handler.ProcessEvent(tcell.NewEventMouse(3, 3, tcell.Button1, tcell.ModNone))
	expectSingle(t, actionChan, statepkg.NavigateAction{Direction: navigator.Next})

	// Held button and drag report the same buttons again.
	handler.ProcessEvent(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	if got := drain(actionChan); len(got) != 0 {
		t.Fatalf("held button should not navigate again, got %#v", got)
	}

	handler.ProcessEvent(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))
	handler.ProcessEvent(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModShift))
	expectSingle(t, actionChan, statepkg.NavigateAction{Direction: navigator.Previous})

	handler.ProcessEvent(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))
	handler.ProcessEvent(tcell.NewEventMouse(4, 3, tcell.Button3, tcell.ModNone))
	expectSingle(t, actionChan, statepkg.NavigateAction{Direction: navigator.Previous})

	handler.ProcessEvent(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))
	handler.ProcessEvent(tcell.NewEventMouse(4, 3, tcell.Button2, tcell.ModNone))
	if got := drain(actionChan); len(got) != 0 {
		t.Fatalf("middle button should be ignored, got %#v", got)
	}
}

func TestResizeEmitsAction(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.ProcessEvent(tcell.NewEventResize(120, 40))
	expectSingle(t, actionChan, statepkg.ResizeAction{Width: 120, Height: 40})
}
