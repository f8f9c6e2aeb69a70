package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mpl/internal/config"
	"github.com/kk-code-lab/mpl/internal/lastitem"
	"github.com/kk-code-lab/mpl/internal/launcher"
	statepkg "github.com/kk-code-lab/mpl/internal/state"
	inputui "github.com/kk-code-lab/mpl/internal/ui/input"
	renderui "github.com/kk-code-lab/mpl/internal/ui/render"
)

// playerStarter starts a media player and returns its PID.
type playerStarter interface {
	Start(req launcher.Request) (int, error)
}

// Options configures NewApplication. Zero values select the defaults: the
// built-in config, the real terminal and the XDG state file.
type Options struct {
	Config   *config.Config
	StartDir string
	Screen   tcell.Screen
	Store    *lastitem.Store
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool

	player    playerStarter
	store     *lastitem.Store
	alive     func(pid int) bool
	terminate func(pid int) error
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// State exposes the application state, mainly for tests.
func (app *Application) State() *statepkg.AppState {
	return app.state
}
