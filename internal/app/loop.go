package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/huaga/internal/state"
	inputui "github.com/kk-code-lab/huaga/internal/ui/input"
)

// Run processes events until the user quits.
func (app *Application) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer app.stopDispatch()

	syncDone := make(chan struct{})
	go func() {
		defer close(syncDone)
		if err := app.renderSync.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			app.logger.Error("render loop stopped", slog.Any("err", err))
		}
	}()
	defer func() {
		cancel()
		<-syncDone
	}()

	app.render()
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.render()
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) render() {
	app.renderer.Render(app.view.Snapshot(), app.status)
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventMouse, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return false
	case *tcell.EventInterrupt:
		// A new bitmap reached the canvas.
		return true
	default:
		return false
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch a := action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.ResizeAction:
		app.screen.Sync()
		return true
	case statepkg.PanAction:
		return app.renderer.Pan(a.DX, a.DY)
	case statepkg.ScrollAction:
		if !a.Modifier {
			// Wheel up moves the view up.
			return app.renderer.Pan(0, int(-a.Delta*inputui.PanStep))
		}
	case renderFailedAction:
		app.status.Err = a.err
		return true
	}

	return app.handleViewAction(action)
}

func (app *Application) handleViewAction(action statepkg.Action) bool {
	before := app.view.Snapshot().Path
	changed, err := app.reducer.Reduce(app.view, action)
	if err != nil {
		app.logger.Debug("action failed", slog.String("action", actionName(action)), slog.Any("err", err))
		app.status.Err = err
		return true
	}
	if changed {
		app.status.Err = nil
		app.status.Message = ""
		if _, ok := action.(statepkg.ReloadAction); ok {
			app.status.Message = "reloaded"
		}
	}

	if after := app.view.Snapshot().Path; after != before {
		app.follow(after)
	}
	return changed
}

func (app *Application) follow(path string) {
	if app.follower == nil || app.follower.Current() == path {
		return
	}
	if err := app.follower.Follow(path); err != nil {
		app.logger.Warn("cannot watch image", slog.String("path", path), slog.Any("err", err))
	}
}

func actionName(action statepkg.Action) string {
	switch action.(type) {
	case statepkg.OpenFileAction:
		return "open"
	case statepkg.NavigateAction:
		return "navigate"
	case statepkg.ReloadAction:
		return "reload"
	default:
		return "view"
	}
}
