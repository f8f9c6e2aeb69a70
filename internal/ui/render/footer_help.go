package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/mpl/internal/state"
)

// buildFooterHelpText returns the key hint shown on the message line while
// there is no message.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ")
}

// buildFooterHelpSegments assembles context-aware key hints.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	var segments []string
	switch {
	case state.Filter.Search != "":
		segments = []string{
			"type: search",
			"⌫: delete char",
			"Del: clear",
			"→: choose",
		}
	case len(state.View) == 0:
		segments = []string{
			"←: up",
			"F5: refresh",
			"F7: hidden",
		}
	default:
		segments = []string{
			"→: play",
			"↵: remember+play",
			"←: up",
			"F5: refresh",
			"F6: dirs",
			"F7: hidden",
		}
	}

	if state.LastItem != "" {
		segments = append(segments, "F8: restore")
	}
	if len(state.PIDs) > 0 {
		segments = append(segments, "F9: close player")
	}
	return append(segments, "F12: quit")
}
