package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mpl/internal/config"
	"github.com/kk-code-lab/mpl/internal/lastitem"
	"github.com/kk-code-lab/mpl/internal/launcher"
	"github.com/kk-code-lab/mpl/internal/media"
	statepkg "github.com/kk-code-lab/mpl/internal/state"
	"github.com/kk-code-lab/mpl/internal/ui/input"
	renderui "github.com/kk-code-lab/mpl/internal/ui/render"
)

func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	store := opts.Store
	if store == nil {
		path, err := config.LastItemPath()
		if err != nil {
			slog.Warn("last item disabled", "err", err)
		}
		store = lastitem.NewStore(path)
	}

	state := newInitialState(cfg)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h
	state.Viewport = statepkg.NewViewport(statepkg.VisibleRows(h))

	lastItem, err := store.Load()
	if err != nil {
		slog.Warn("cannot read last item", "path", store.Path(), "err", err)
	}
	state.LastItem = lastItem

	if err := loadInitialDirectory(state, opts.StartDir); err != nil {
		screen.Fini()
		return nil, err
	}

	actionCh := make(chan statepkg.Action, 10)
	app := &Application{
		screen:    screen,
		state:     state,
		reducer:   statepkg.NewStateReducer(),
		renderer:  renderui.NewRenderer(screen),
		input:     input.NewInputHandler(actionCh),
		actionCh:  actionCh,
		player:    launcher.New(cfg.LauncherOptions()),
		store:     store,
		alive:     launcher.Alive,
		terminate: launcher.Terminate,
	}

	slog.Debug("application ready", "dir", state.CurrentPath(), "last_item", state.LastItem)
	return app, nil
}

func newInitialState(cfg *config.Config) *statepkg.AppState {
	state := &statepkg.AppState{
		Nav:         statepkg.NewNavPath(""),
		ListOptions: cfg.ListOptions(),
		Listing:     []statepkg.FileEntry{},
		View:        []statepkg.FileEntry{},
		Filter:      statepkg.DefaultFilterState(media.PlayerExtensions()),
	}
	state.Filter.ShowHidden = cfg.Filter.ShowHidden
	return state
}

// loadInitialDirectory opens startDir when given. Otherwise the remembered
// item is restored, falling back to the working directory.
func loadInitialDirectory(state *statepkg.AppState, startDir string) error {
	if startDir != "" {
		return statepkg.LoadDirectory(state, startDir)
	}
	if statepkg.RestoreLastItem(state) {
		return nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}
	return statepkg.LoadDirectory(state, cwd)
}

func (app *Application) Run() {
	defer app.screen.Fini()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	sigContCh, stopCont := notifySignals(contSignals())
	defer stopCont()
	sigQuitCh, stopQuit := notifySignals(quitSignals())
	defer stopQuit()

	app.render()

	for !app.shouldQuit {
		renderPending := false

		select {
		case ev := <-eventChan:
			renderPending = app.handleEvent(ev)
		case action := <-app.actionCh:
			renderPending = app.handleAction(action)
		case sig := <-sigQuitCh:
			slog.Info("quitting on signal", "signal", sig.String())
			app.shouldQuit = true
		case <-sigContCh:
			renderPending = app.resumeAfterStop()
		}

		if app.processActions() {
			renderPending = true
		}
		if renderPending && !app.shouldQuit {
			app.render()
		}
	}
}

func notifySignals(sigs []os.Signal) (chan os.Signal, func()) {
	if len(sigs) == 0 {
		return nil, func() {}
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	return ch, func() { signal.Stop(ch) }
}

// render drops finished players from the status line and redraws.
func (app *Application) render() {
	app.state.PrunePIDs(app.alive)
	app.renderer.Render(app.state)
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
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

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	return app.handleAppAction(action)
}

func (app *Application) handleAppAction(action statepkg.Action) bool {
	if _, isResize := action.(statepkg.ResizeAction); !isResize {
		app.state.LastError = nil
	}

	switch a := action.(type) {
	case statepkg.ChooseAction:
		return app.handleChoose(a.Remember)
	case statepkg.ClosePlayerAction:
		return app.handleClosePlayer()
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
	}
	return true
}
