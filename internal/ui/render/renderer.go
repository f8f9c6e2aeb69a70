package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mpl/internal/media"
	search "github.com/kk-code-lab/mpl/internal/search"
	statepkg "github.com/kk-code-lab/mpl/internal/state"
	textutil "github.com/kk-code-lab/mpl/internal/textutil"
)

const searchPrompt = ":"

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state. Rows that do not fit are
// skipped, so a terminal of any size is drawn without error.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 || state == nil {
		r.screen.Show()
		return
	}

	r.drawStatusLine(state, w)
	r.drawList(state, w, h)
	if h >= 3 {
		r.drawMessageLine(state, w, h-2)
	}
	if h >= 2 {
		r.drawSearchLine(state, w, h-1)
	}

	r.screen.Show()
}

// drawStatusLine renders the current directory and its flags on row 0. The
// path is trimmed from the left so the flags stay visible.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)
	flagStyle := style.Bold(true)

	path := textutil.SanitizeTerminalText(state.CurrentPath())
	flags := ""
	for _, flag := range formatStatusFlags(state) {
		flags += statusSeparator + flag
	}

	pathWidth := w - textutil.DisplayWidth(flags)
	if pathWidth < 1 {
		pathWidth = 1
	}
	x := r.drawTextLine(0, 0, w, textutil.TruncateLeft(path, pathWidth), style)
	x = r.drawTextLine(x, 0, w-x, flags, flagStyle)
	r.fillLine(x, 0, w, style)
}

// drawList renders the visible window of the filtered view.
func (r *Renderer) drawList(state *statepkg.AppState, w, h int) {
	bottomLimit := h - (statepkg.ReservedLines - statepkg.ListStartY)
	if bottomLimit <= statepkg.ListStartY {
		return
	}

	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	entries, start := state.VisibleEntries()
	selected := state.SelectedIndex()

	y := statepkg.ListStartY
	for i, entry := range entries {
		if y >= bottomLimit {
			break
		}
		isSelected := start+i == selected
		rowStyle := r.entryStyle(state, entry)
		matchStyle := rowStyle.Foreground(r.theme.MatchFg).Bold(true)
		if isSelected {
			rowStyle = rowStyle.Reverse(true)
			matchStyle = matchStyle.Reverse(true)
		}

		name := textutil.SanitizeTerminalText(entry.Name)
		var spans []search.MatchSpan
		if name == entry.Name {
			spans = search.WordSpans(state.Filter.Search, entry.Name)
		}
		if entry.IsDir {
			name += "/"
		}
		name = textutil.TruncateRight(name, w)

		x := r.drawHighlightedText(0, y, w, name, spans, rowStyle, matchStyle)
		fill := baseStyle
		if isSelected {
			fill = rowStyle
		}
		r.fillLine(x, y, w, fill)
		y++
	}

	for ; y < bottomLimit; y++ {
		r.fillLine(0, y, w, baseStyle)
	}
}

// entryStyle picks the row color: directories first, then the remembered
// item, then the media category.
func (r *Renderer) entryStyle(state *statepkg.AppState, entry statepkg.FileEntry) tcell.Style {
	style := tcell.StyleDefault.Background(r.theme.Background)
	if entry.IsDir {
		return style.Foreground(r.theme.DirectoryFg)
	}
	if state.LastItem != "" && entry.FullPath == state.LastItem {
		return style.Foreground(r.theme.LastItemFg)
	}
	switch media.Classify(entry) {
	case media.CategoryAudio:
		return style.Foreground(r.theme.AudioFg)
	case media.CategoryVideo:
		return style.Foreground(r.theme.VideoFg)
	case media.CategorySubtitle:
		return style.Foreground(r.theme.SubtitleFg)
	case media.CategoryOther:
		return style.Foreground(r.theme.OtherFg)
	default:
		return style.Foreground(r.theme.FileFg)
	}
}

// drawMessageLine shows the last error, the last message, or key hints.
func (r *Renderer) drawMessageLine(state *statepkg.AppState, w, y int) {
	style := tcell.StyleDefault.Background(r.theme.Background)
	var text string
	switch {
	case state.LastError != nil:
		style = style.Foreground(r.theme.ErrorFg)
		text = state.LastError.Error()
	case state.Message != "":
		style = style.Foreground(r.theme.MessageFg)
		text = state.Message
	default:
		style = style.Foreground(r.theme.HintFg)
		text = buildFooterHelpText(state)
	}

	text = textutil.TruncateRight(textutil.SanitizeTerminalText(text), w)
	x := r.drawTextLine(0, y, w, text, style)
	r.fillLine(x, y, w, tcell.StyleDefault.Background(r.theme.Background))
}

// drawSearchLine renders the search input. Long input keeps its tail
// visible, where the user is typing.
func (r *Renderer) drawSearchLine(state *statepkg.AppState, w, y int) {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	cursorStyle := style.Reverse(true)

	x := r.drawTextLine(0, y, w, searchPrompt, style)
	term := textutil.SanitizeTerminalText(state.Filter.Search)
	if avail := w - x - 1; avail > 0 {
		x = r.drawTextLine(x, y, avail, textutil.TruncateLeft(term, avail), style)
	}
	x = r.drawStyledRune(x, y, w, ' ', cursorStyle)
	r.fillLine(x, y, w, style)
}
