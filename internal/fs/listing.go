package fs

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/text/unicode/norm"
)

// DefaultIgnoredNames never show up in a listing. Matching is case-insensitive.
var DefaultIgnoredNames = []string{"lost+found", ".git"}

// ListOptions controls which entries ReadListing keeps.
type ListOptions struct {
	IgnoredNames []string
	// SkipEmpty drops zero-byte files; a zero-byte media file is never playable.
	SkipEmpty bool
}

// DefaultListOptions returns the options used when nothing is configured.
func DefaultListOptions() ListOptions {
	return ListOptions{
		IgnoredNames: append([]string(nil), DefaultIgnoredNames...),
		SkipEmpty:    true,
	}
}

func (o ListOptions) ignored(name string) bool {
	for _, ignored := range o.IgnoredNames {
		if strings.EqualFold(name, ignored) {
			return true
		}
	}
	return false
}

// ReadListing reads dir and returns its entries in natural name order.
// Read failures (missing path, permission denied, not a directory) yield an
// empty listing rather than an error.
func ReadListing(dir string, opts ListOptions) []Entry {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		slog.Debug("listing failed", "dir", dir, "err", err)
		return []Entry{}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		rawName := e.Name()
		if opts.ignored(rawName) {
			continue
		}

		fullPath := filepath.Join(dir, rawName)

		// Stat follows symlinks so a link to a directory navigates like one.
		info, err := os.Stat(fullPath)
		if err != nil {
			continue
		}

		isDir := info.IsDir()
		if opts.SkipEmpty && !isDir && info.Size() == 0 {
			continue
		}

		entries = append(entries, Entry{
			Name:     norm.NFC.String(rawName),
			FullPath: fullPath,
			IsDir:    isDir,
			Size:     info.Size(),
		})
	}

	SortEntries(entries)
	return entries
}

// SortEntries orders entries by name using natural (numeric-aware) ordering,
// so "item2" sorts before "item10".
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return natural.Less(entries[i].Name, entries[j].Name)
	})
}
