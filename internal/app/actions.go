package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kk-code-lab/mpl/internal/launcher"
	"github.com/kk-code-lab/mpl/internal/media"
	statepkg "github.com/kk-code-lab/mpl/internal/state"
)

// handleChoose opens the highlighted entry. Directories are entered,
// subtitles are armed for the next launch and everything else is played.
// With remember the item is saved and playback starts paused.
func (app *Application) handleChoose(remember bool) bool {
	file := app.state.CurrentFile()
	if file == nil {
		return true
	}

	var action statepkg.Action
	switch {
	case file.IsDir:
		action = statepkg.EnterDirectoryAction{}
	case media.IsSubtitle(*file):
		action = statepkg.ToggleSubtitleAction{}
	}
	if action != nil {
		if _, err := app.reducer.Reduce(app.state, action); err != nil {
			app.state.LastError = err
		}
		return true
	}

	entry := *file
	req := launcher.Request{
		Path:    entry.FullPath,
		Size:    entry.Size,
		SubPath: app.state.SubPath,
		Paused:  remember,
	}
	pid, err := app.player.Start(req)
	if err != nil {
		slog.Error("cannot start player", "path", entry.FullPath, "err", err)
		app.state.LastError = err
		return true
	}
	slog.Info("player started", "pid", pid, "path", entry.FullPath, "paused", remember, "sub", req.SubPath)
	app.state.PushPID(pid)

	if remember {
		app.rememberItem(entry)
	}
	return true
}

func (app *Application) rememberItem(entry statepkg.FileEntry) {
	app.state.Remember(entry.FullPath)
	if err := app.store.Save(entry.FullPath); err != nil {
		slog.Warn("cannot save last item", "path", entry.FullPath, "err", err)
		app.state.LastError = fmt.Errorf("cannot remember %s: %w", entry.Name, err)
		return
	}
	app.state.Message = fmt.Sprintf("Saved for later playback: %s", entry.Name)
}

// handleClosePlayer terminates the most recently started player.
func (app *Application) handleClosePlayer() bool {
	pid, ok := app.state.PopPID()
	if !ok {
		app.state.Message = "No player to close."
		return true
	}

	err := app.terminate(pid)
	switch {
	case err == nil:
		slog.Info("player terminated", "pid", pid)
		app.state.Message = fmt.Sprintf("Closed player %d.", pid)
	case errors.Is(err, launcher.ErrProcessGone):
		app.state.Message = fmt.Sprintf("Player %d has already exited.", pid)
	default:
		slog.Error("cannot terminate player", "pid", pid, "err", err)
		app.state.LastError = fmt.Errorf("cannot close player %d: %w", pid, err)
	}
	return true
}
