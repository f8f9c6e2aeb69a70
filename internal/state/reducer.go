package state

import (
	"fmt"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// StateReducer applies actions that only touch AppState and the filesystem
// listing. Actions with process side effects are handled by the app layer.
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	n := len(state.View)

	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		state.Viewport.MoveDown(n)
		return state, nil

	case NavigateUpAction:
		state.Viewport.MoveUp()
		return state, nil

	case NavigateHomeAction:
		state.Viewport.Reset()
		return state, nil

	case NavigateEndAction:
		state.Viewport.End(n)
		return state, nil

	case ScrollPageDownAction:
		state.Viewport.PageDown(n)
		return state, nil

	case ScrollPageUpAction:
		state.Viewport.PageUp(n)
		return state, nil

	case EnterDirectoryAction:
		file := state.CurrentFile()
		if file == nil || !file.IsDir {
			return state, nil
		}
		// Name is NFC; the on-disk spelling may be decomposed.
		state.Nav.Cd(filepath.Base(file.FullPath))
		state.Filter.Search = ""
		state.reloadListing()
		state.resetViewport()
		return state, nil

	case GoUpAction:
		// Select the directory we came from once the parent is listed.
		previous := state.Nav.Base()
		state.Nav.Up()
		state.Filter.Search = ""
		state.Filter.ShowDirs = true
		state.reloadListing()
		state.selectByName(norm.NFC.String(previous))
		return state, nil

	case RefreshDirectoryAction:
		selected := state.currentName()
		previous := state.SelectedIndex()
		state.Message = ""
		state.reloadListing()
		if !state.selectByName(selected) {
			state.selectIndex(previous)
		}
		return state, nil

	case RestoreLastItemAction:
		if !RestoreLastItem(state) {
			state.Message = "Nothing to restore."
		}
		return state, nil

	// ===== FILTER =====

	case FilterCharAction:
		state.Filter.Search += string(a.Char)
		state.recomputeView()
		state.resetViewport()
		return state, nil

	case FilterBackspaceAction:
		if state.Filter.Search == "" {
			return state, nil
		}
		runes := []rune(state.Filter.Search)
		r.applySearch(state, string(runes[:len(runes)-1]))
		return state, nil

	case FilterClearAction:
		if state.Filter.Search == "" {
			return state, nil
		}
		r.applySearch(state, "")
		return state, nil

	case ToggleDirectoriesAction:
		state.Filter.ShowDirs = !state.Filter.ShowDirs
		state.recomputeView()
		state.resetViewport()
		return state, nil

	case ToggleHiddenFilesAction:
		state.Filter.ShowHidden = !state.Filter.ShowHidden
		state.recomputeView()
		state.resetViewport()
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.Viewport.Resize(VisibleRows(a.Height), n)
		return state, nil

	// ===== PLAYBACK =====

	case ToggleSubtitleAction:
		file := state.CurrentFile()
		if file == nil || file.IsDir {
			return state, nil
		}
		if state.SubPath == "" {
			state.SubPath = file.FullPath
			state.Message = fmt.Sprintf("Subtitle selected: %s", file.Name)
		} else {
			state.SubPath = ""
			state.Message = "No subtitle selected."
		}
		return state, nil
	}

	return state, nil
}

// applySearch widens or narrows the view for a new search term, keeping the
// highlighted entry when it is still listed.
func (r *StateReducer) applySearch(state *AppState, term string) {
	selected := state.currentName()
	state.Filter.Search = term
	state.recomputeView()
	if selected == "" || !state.selectByName(selected) {
		state.resetViewport()
	}
}
