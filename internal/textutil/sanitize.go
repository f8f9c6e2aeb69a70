package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeTerminalText makes a file name safe to draw. Control characters
// become '?' (line breaks and tabs become a space) so a name cannot inject
// escape sequences. Invisible format runes such as bidi overrides are shown
// as their code point, e.g. "⟪U+202E⟫", so they cannot disguise a name.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, unsafeRune) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			b.WriteByte('?')
		case invisibleFormat(r):
			fmt.Fprintf(&b, "⟪U+%04X⟫", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unsafeRune(r rune) bool {
	return unicode.IsControl(r) || invisibleFormat(r)
}

// invisibleFormat reports format and separator runes that draw nothing.
// Joiners stay, emoji sequences depend on them.
func invisibleFormat(r rune) bool {
	if r == 0x200C || r == 0x200D {
		return false
	}
	return unicode.In(r, unicode.Cf, unicode.Zl, unicode.Zp)
}
