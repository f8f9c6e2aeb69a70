package state

import (
	fsutil "github.com/kk-code-lab/mpl/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

const (
	// ListStartY is the screen row of the first list entry; row 0 holds the
	// status line.
	ListStartY = 1
	// ReservedLines counts the rows not available to the list: status,
	// message and search input.
	ReservedLines = 3
)

// AppState is the single source of truth
type AppState struct {
	// Navigation & filesystem
	Nav         NavPath
	ListOptions fsutil.ListOptions
	Listing     []FileEntry // Every entry of the current directory, naturally sorted

	// Filtering
	Filter FilterState
	View   []FileEntry // Listing entries accepted by Filter

	// Selection & viewport
	Viewport Viewport

	// Playback bookkeeping
	LastItem string // Remembered file, absolute path
	SubPath  string // Subtitle armed for the next launch
	PIDs     []int  // Players started in this session, oldest first

	// Message line
	Message string

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Error state
	LastError error
}

// VisibleRows returns how many list rows fit in a terminal of the given
// height. It never drops below one.
func VisibleRows(height int) int {
	return clampRows(height - ReservedLines)
}

// CurrentPath returns the absolute path of the directory being browsed.
func (s *AppState) CurrentPath() string {
	return s.Nav.String()
}

// SelectedIndex returns the index of the highlighted entry in View.
func (s *AppState) SelectedIndex() int {
	return s.Viewport.Selected()
}

// CurrentFile returns the highlighted entry, or nil when the view is empty.
func (s *AppState) CurrentFile() *FileEntry {
	idx := s.Viewport.Selected()
	if idx < 0 || idx >= len(s.View) {
		return nil
	}
	return &s.View[idx]
}

// VisibleEntries returns the slice of View currently on screen together with
// the index of its first element.
func (s *AppState) VisibleEntries() ([]FileEntry, int) {
	start, end := s.Viewport.Window(len(s.View))
	return s.View[start:end], start
}

// Remember records path as the remembered item.
func (s *AppState) Remember(path string) {
	s.LastItem = path
}

// PushPID tracks a started player.
func (s *AppState) PushPID(pid int) {
	s.PIDs = append(s.PIDs, pid)
}

// PopPID removes and returns the most recently started player.
func (s *AppState) PopPID() (int, bool) {
	if len(s.PIDs) == 0 {
		return 0, false
	}
	last := len(s.PIDs) - 1
	pid := s.PIDs[last]
	s.PIDs = s.PIDs[:last]
	return pid, true
}

// PrunePIDs drops players for which alive reports false.
func (s *AppState) PrunePIDs(alive func(int) bool) {
	kept := s.PIDs[:0]
	for _, pid := range s.PIDs {
		if alive(pid) {
			kept = append(kept, pid)
		}
	}
	s.PIDs = kept
}

// recomputeView rebuilds View from Listing and Filter.
func (s *AppState) recomputeView() {
	s.View = ApplyFilter(s.Listing, s.Filter)
}

// reloadListing re-reads the current directory and rebuilds View.
func (s *AppState) reloadListing() {
	s.Listing = fsutil.ReadListing(s.CurrentPath(), s.ListOptions)
	s.recomputeView()
}

func (s *AppState) rows() int {
	if s.ScreenHeight <= 0 {
		return clampRows(s.Viewport.Rows)
	}
	return VisibleRows(s.ScreenHeight)
}

// resetViewport selects the first entry.
func (s *AppState) resetViewport() {
	s.Viewport.Rows = s.rows()
	s.Viewport.Reset()
}

// selectByName resets the viewport and jumps to name when it is visible.
func (s *AppState) selectByName(name string) bool {
	s.resetViewport()
	idx := IndexOf(s.View, name)
	if idx < 0 {
		return false
	}
	s.Viewport.SetCursor(idx, len(s.View))
	return true
}

// selectIndex selects idx, clamped into the view.
func (s *AppState) selectIndex(idx int) {
	n := len(s.View)
	if idx > n-1 {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	s.Viewport.SetCursor(idx, n)
}

func (s *AppState) currentName() string {
	if file := s.CurrentFile(); file != nil {
		return file.Name
	}
	return ""
}
