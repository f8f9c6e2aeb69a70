package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type NavigateHomeAction struct{}
type NavigateEndAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}
type RefreshDirectoryAction struct{}
type RestoreLastItemAction struct{}

// ===== FILTER ACTIONS =====

type FilterCharAction struct {
	Char rune
}
type FilterBackspaceAction struct{}
type FilterClearAction struct{}
type ToggleDirectoriesAction struct{}
type ToggleHiddenFilesAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== PLAYBACK ACTIONS =====

// ChooseAction opens the highlighted entry: enters a directory, arms a
// subtitle or launches a player. Remember also saves the item and starts
// playback paused.
type ChooseAction struct {
	Remember bool
}
type ToggleSubtitleAction struct{}
type ClosePlayerAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{}
