package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut to fit the screen.
const Ellipsis = "…"

// RuneWidth is the column width of r; combining marks count as zero.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		width += RuneWidth(r)
	}
	return width
}

// TruncateRight cuts text to maxWidth columns, ending with an ellipsis when
// anything was dropped.
func TruncateRight(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}
	ellipsisWidth := DisplayWidth(Ellipsis)
	if maxWidth <= ellipsisWidth {
		return Ellipsis
	}

	available := maxWidth - ellipsisWidth
	var b strings.Builder
	width := 0
	for _, r := range text {
		rw := RuneWidth(r)
		if width+rw > available {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	b.WriteString(Ellipsis)
	return b.String()
}

// TruncateLeft keeps the end of text, which for paths is the useful part,
// and prefixes an ellipsis when anything was dropped.
func TruncateLeft(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}
	ellipsisWidth := DisplayWidth(Ellipsis)
	if maxWidth <= ellipsisWidth {
		return Ellipsis
	}

	available := maxWidth - ellipsisWidth
	runes := []rune(text)
	start := len(runes)
	width := 0
	for start > 0 {
		rw := RuneWidth(runes[start-1])
		if width+rw > available {
			break
		}
		width += rw
		start--
	}
	return Ellipsis + string(runes[start:])
}
