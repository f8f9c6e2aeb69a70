//go:build !windows

package app

import (
	"syscall"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mpl/internal/state"
)

func (app *Application) suspendToShell() {
	// Return terminal control to the shell before stopping the process.
	_ = app.screen.Suspend()
	// Stop only this process, not the whole group: players run in their own
	// sessions and the launching shell must keep job control.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		return false
	}
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		if _, err := app.reducer.Reduce(app.state, statepkg.ResizeAction{Width: w, Height: h}); err != nil {
			app.state.LastError = err
		}
	}
	return true
}
