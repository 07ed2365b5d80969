package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/huaga/internal/navigator"
	statepkg "github.com/kk-code-lab/huaga/internal/state"
)

const (
	// PanStep is how far one arrow key or wheel notch pans, in pixels.
	PanStep = 8
	// PanPage is the pan distance with Shift held.
	PanPage = 32
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan  chan statepkg.Action
	viewport    func() (int, int)
	lastButtons tcell.ButtonMask
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetViewport sets the source of the image area size used by fit-to-view.
func (ih *InputHandler) SetViewport(fn func() (int, int)) {
	ih.viewport = fn
}

// ProcessEvent converts a tcell event into Actions. It returns false when
// the viewer should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventMouse:
		ih.processMouseEvent(ev)
		return true
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	step := PanStep
	if ev.Modifiers()&tcell.ModShift != 0 {
		step = PanPage
	}

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyPgUp:
		ih.navigate(navigator.Previous)
	case tcell.KeyPgDn:
		ih.navigate(navigator.Next)
	case tcell.KeyUp:
		ih.actionChan <- statepkg.PanAction{DY: -step}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.PanAction{DY: step}
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.PanAction{DX: -step}
	case tcell.KeyRight:
		ih.actionChan <- statepkg.PanAction{DX: step}
	case tcell.KeyRune:
		return ih.processRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) processRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'n', ' ':
		ih.navigate(navigator.Next)
	case 'p':
		ih.navigate(navigator.Previous)
	case '0':
		ih.actionChan <- statepkg.ResetZoomAction{}
	case 'f':
		w, h := 0, 0
		if ih.viewport != nil {
			w, h = ih.viewport()
		}
		ih.actionChan <- statepkg.FitZoomAction{Width: w, Height: h}
	case 'r':
		ih.actionChan <- statepkg.ReloadAction{}
	case '+', '=':
		ih.actionChan <- statepkg.ScrollAction{Delta: 1, Modifier: true}
	case '-', '_':
		ih.actionChan <- statepkg.ScrollAction{Delta: -1, Modifier: true}
	case 'h':
		ih.actionChan <- statepkg.PanAction{DX: -PanStep}
	case 'l':
		ih.actionChan <- statepkg.PanAction{DX: PanStep}
	case 'k':
		ih.actionChan <- statepkg.PanAction{DY: -PanStep}
	case 'j':
		ih.actionChan <- statepkg.PanAction{DY: PanStep}
	case 'H':
		ih.actionChan <- statepkg.PanAction{DX: -PanPage}
	case 'L':
		ih.actionChan <- statepkg.PanAction{DX: PanPage}
	case 'K':
		ih.actionChan <- statepkg.PanAction{DY: -PanPage}
	case 'J':
		ih.actionChan <- statepkg.PanAction{DY: PanPage}
	}
	return true
}

// processMouseEvent turns wheel notches into scroll samples and button
// presses into navigation. Terminals repeat button events while a button
// is held, so only the press edge counts as a click.
func (ih *InputHandler) processMouseEvent(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	mods := ev.Modifiers()
	zoom := mods&tcell.ModCtrl != 0

	switch {
	case buttons&tcell.WheelUp != 0:
		ih.actionChan <- statepkg.ScrollAction{Delta: 1, Modifier: zoom}
	case buttons&tcell.WheelDown != 0:
		ih.actionChan <- statepkg.ScrollAction{Delta: -1, Modifier: zoom}
	case buttons&tcell.WheelLeft != 0:
		ih.actionChan <- statepkg.PanAction{DX: -PanStep}
	case buttons&tcell.WheelRight != 0:
		ih.actionChan <- statepkg.PanAction{DX: PanStep}
	}

	clicks := buttons &^ ih.lastButtons
	ih.lastButtons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	switch {
	case clicks&tcell.Button1 != 0 && mods&tcell.ModShift != 0:
		ih.navigate(navigator.Previous)
	case clicks&tcell.Button1 != 0:
		ih.navigate(navigator.Next)
	case clicks&tcell.Button3 != 0:
		ih.navigate(navigator.Previous)
	}
}

func (ih *InputHandler) navigate(dir navigator.Direction) {
	ih.actionChan <- statepkg.NavigateAction{Direction: dir}
}
