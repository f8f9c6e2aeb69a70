package state

import (
	"strings"

	search "github.com/kk-code-lab/mpl/internal/search"
)

// FilterState holds the user-controlled predicates for the entry list.
type FilterState struct {
	ShowDirs   bool
	ShowHidden bool
	// Extensions restricts files to these lower-case extensions; empty means
	// no restriction. Directories are never excluded by extension.
	Extensions map[string]struct{}
	Search     string
}

// DefaultFilterState shows directories, hides dotfiles and restricts files
// to exts.
func DefaultFilterState(exts map[string]struct{}) FilterState {
	return FilterState{
		ShowDirs:   true,
		ShowHidden: false,
		Extensions: exts,
	}
}

// Accepts reports whether entry passes every active predicate.
func (f FilterState) Accepts(entry FileEntry) bool {
	if !f.ShowDirs && entry.IsDir {
		return false
	}
	if !f.ShowHidden && entry.IsHidden() {
		return false
	}
	if len(f.Extensions) > 0 && !entry.IsDir {
		if _, ok := f.Extensions[entry.LowerExt()]; !ok {
			return false
		}
	}
	if f.Search != "" && !search.MatchWords(f.Search, entry.Name) {
		return false
	}
	return true
}

// ApplyFilter returns the entries of listing accepted by f, in listing order.
func ApplyFilter(listing []FileEntry, f FilterState) []FileEntry {
	view := make([]FileEntry, 0, len(listing))
	for _, entry := range listing {
		if f.Accepts(entry) {
			view = append(view, entry)
		}
	}
	return view
}

// IndexOf returns the position of the first entry named name, or -1.
func IndexOf(view []FileEntry, name string) int {
	for idx, entry := range view {
		if entry.Name == name {
			return idx
		}
	}
	return -1
}

// ExtensionSet builds a lower-case extension set, dropping leading dots.
func ExtensionSet(exts ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}
	return set
}
