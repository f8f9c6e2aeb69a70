package state

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// LoadDirectory points the state at a directory, reads it and resets the
// selection. Without a path argument the current directory is reloaded.
func LoadDirectory(state *AppState, path ...string) error {
	if len(path) > 0 {
		info, err := os.Stat(path[0])
		if err != nil {
			return fmt.Errorf("cannot open directory %s: %w", path[0], err)
		}
		if !info.IsDir() {
			return fmt.Errorf("cannot open directory %s: not a directory", path[0])
		}
		if !state.Nav.Set(path[0]) {
			return fmt.Errorf("cannot open directory %s", path[0])
		}
	}

	state.Filter.Search = ""
	state.reloadListing()
	state.resetViewport()
	return nil
}

// RestoreLastItem opens the directory of the remembered item and selects it.
// It reports false when there is no remembered regular file.
func RestoreLastItem(state *AppState) bool {
	if state.LastItem == "" {
		return false
	}
	info, err := os.Stat(state.LastItem)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	if err := LoadDirectory(state, filepath.Dir(state.LastItem)); err != nil {
		return false
	}
	state.selectByName(norm.NFC.String(filepath.Base(state.LastItem)))
	return true
}
