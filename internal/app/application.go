package app

import (
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/huaga/internal/imaging"
	"github.com/kk-code-lab/huaga/internal/navigator"
	statepkg "github.com/kk-code-lab/huaga/internal/state"
	inputui "github.com/kk-code-lab/huaga/internal/ui/input"
	renderui "github.com/kk-code-lab/huaga/internal/ui/render"
	"github.com/kk-code-lab/huaga/internal/watch"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	view       *statepkg.ViewState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	renderSync *statepkg.RenderSync
	follower   *watch.Follower
	logger     *slog.Logger
	actionCh   chan statepkg.Action
	status     renderui.Status
	shouldQuit bool

	// done is closed once the loop stops consuming actionCh.
	done     chan struct{}
	doneOnce sync.Once
}

// renderFailedAction carries a RenderSync failure into the event loop.
type renderFailedAction struct {
	err error
}

// NewApplication initializes the terminal and opens opts.Path.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	// Keys typed while the terminal was being set up would otherwise
	// replay as commands.
	_ = flushPendingInput()

	return newApplication(screen, opts), nil
}

func newApplication(screen tcell.Screen, opts Options) *Application {
	opts = opts.withDefaults()
	logger := opts.Logger

	app := &Application{
		screen:   screen,
		reducer:  statepkg.NewStateReducer(),
		logger:   logger,
		actionCh: make(chan statepkg.Action, 64),
		done:     make(chan struct{}),
	}

	canvas := renderui.NewCanvas(func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	codec := imaging.NewCodec(imaging.Options{MaxPixels: opts.MaxPixels, MaxFrames: opts.MaxFrames})

	var navOpts []navigator.Option
	if opts.SkipHidden {
		navOpts = append(navOpts, navigator.WithSkipHidden())
	}
	app.view = statepkg.NewViewState(codec, canvas,
		statepkg.WithNavigator(navigator.New(nil, navOpts...)),
		statepkg.WithLogger(logger),
	)
	app.renderer = renderui.NewRenderer(screen, canvas)
	app.input = inputui.NewInputHandler(app.actionCh)
	app.input.SetViewport(app.renderer.ViewportPixels)
	app.renderSync = &statepkg.RenderSync{
		View:     app.view,
		Interval: opts.Tick,
		Logger:   logger,
		OnError: func(err error) {
			app.dispatch(renderFailedAction{err: err})
		},
	}

	if opts.Watch {
		follower, err := watch.NewFollower(
			func(path string) {
				logger.Debug("file changed", "path", path)
				app.dispatch(statepkg.ReloadAction{})
			},
			watch.WithErrorHandler(func(err error) {
				logger.Warn("watch error", slog.Any("err", err))
			}),
		)
		if err != nil {
			logger.Warn("reload on change disabled", slog.Any("err", err))
		} else {
			app.follower = follower
		}
	}

	if opts.Path != "" {
		app.handleAction(statepkg.OpenFileAction{Path: opts.Path})
		if opts.Fit && app.view.Snapshot().Loaded() {
			w, h := app.renderer.ViewportPixels()
			app.handleAction(statepkg.FitZoomAction{Width: w, Height: h})
		}
	}
	return app
}

// dispatch queues an action from any goroutine without blocking it.
// Actions sent after the loop stopped are dropped.
func (app *Application) dispatch(action statepkg.Action) {
	select {
	case app.actionCh <- action:
	case <-app.done:
	default:
		go func() {
			select {
			case app.actionCh <- action:
			case <-app.done:
			}
		}()
	}
}

func (app *Application) stopDispatch() {
	app.doneOnce.Do(func() { close(app.done) })
}

// CurrentPath returns the image on screen, if any.
func (app *Application) CurrentPath() string {
	return app.view.Snapshot().Path
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.stopDispatch()
	var err error
	if app.follower != nil {
		err = app.follower.Close()
	}
	app.screen.Fini()
	return err
}
