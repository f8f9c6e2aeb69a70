package fs

import (
	"path/filepath"
	"strings"
)

// Entry represents a single file or directory on disk.
type Entry struct {
	Name     string
	FullPath string
	IsDir    bool
	Size     int64
}

// Ext returns the text after the last dot in the name, without the dot.
// Callers compare it lowercased.
func (e Entry) Ext() string {
	return strings.TrimPrefix(filepath.Ext(e.Name), ".")
}

// LowerExt is Ext folded to lower case.
func (e Entry) LowerExt() string {
	return strings.ToLower(e.Ext())
}

// IsHidden reports whether the entry is a dotfile.
func (e Entry) IsHidden() bool {
	return IsHidden(e.Name)
}

// IsHidden checks if a name is hidden on Unix-like systems.
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
