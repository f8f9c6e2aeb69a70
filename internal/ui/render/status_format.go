package render

import (
	"fmt"

	statepkg "github.com/kk-code-lab/mpl/internal/state"
)

const statusSeparator = "  "

// formatStatusFlags lists the markers shown after the current directory.
func formatStatusFlags(state *statepkg.AppState) []string {
	var flags []string
	if len(state.View) == 0 {
		flags = append(flags, "[EMPTY]")
	}
	if state.SubPath != "" {
		flags = append(flags, "[SUB]")
	}
	if n := len(state.PIDs); n > 0 {
		flags = append(flags, fmt.Sprintf("[mpv:%d]", n))
	}
	if !state.Filter.ShowDirs {
		flags = append(flags, "(NO DIR.)")
	}
	if state.Filter.ShowHidden {
		flags = append(flags, "(HIDDEN)")
	}
	return flags
}
