package render

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mpl/internal/state"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(func() {
		screen.Fini()
	})
	return screen
}

func newTestState(t *testing.T, height int, entries ...statepkg.FileEntry) *statepkg.AppState {
	t.Helper()
	dir := t.TempDir()
	for i := range entries {
		if entries[i].FullPath == "" {
			entries[i].FullPath = filepath.Join(dir, entries[i].Name)
		}
	}
	return &statepkg.AppState{
		Nav:          statepkg.NewNavPath(dir),
		Listing:      entries,
		View:         entries,
		Filter:       statepkg.DefaultFilterState(nil),
		Viewport:     statepkg.NewViewport(statepkg.VisibleRows(height)),
		ScreenHeight: height,
	}
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
	}
	return strings.TrimRight(b.String(), " ")
}

func cellStyle(screen tcell.SimulationScreen, x, y int) (tcell.Color, tcell.AttrMask) {
	_, _, style, _ := screen.GetContent(x, y)
	fg, _, attr := style.Decompose()
	return fg, attr
}

func TestRenderStatusLineFlags(t *testing.T) {
	screen := newTestScreen(t, 200, 10)
	state := newTestState(t, 10)
	state.SubPath = "/media/a.srt"
	state.PIDs = []int{10, 11}
	state.Filter.ShowDirs = false
	state.Filter.ShowHidden = true

	NewRenderer(screen).Render(state)

	want := state.CurrentPath() + "  [EMPTY]  [SUB]  [mpv:2]  (NO DIR.)  (HIDDEN)"
	if got := rowText(screen, 0); got != want {
		t.Fatalf("status line = %q, want %q", got, want)
	}
}

func TestRenderStatusLineTrimsPathFromLeft(t *testing.T) {
	screen := newTestScreen(t, 30, 10)
	state := newTestState(t, 10)

	NewRenderer(screen).Render(state)

	got := rowText(screen, 0)
	if !strings.HasPrefix(got, "…") {
		t.Fatalf("expected left ellipsis, got %q", got)
	}
	if !strings.HasSuffix(got, "[EMPTY]") {
		t.Fatalf("expected flags to stay visible, got %q", got)
	}
}

func TestRenderListRowsAndSelection(t *testing.T) {
	screen := newTestScreen(t, 40, 6)
	state := newTestState(t, 6,
		statepkg.FileEntry{Name: "a.mp3", Size: 1},
		statepkg.FileEntry{Name: "extras", IsDir: true},
		statepkg.FileEntry{Name: "film.mkv", Size: 1},
		statepkg.FileEntry{Name: "z.txt", Size: 1},
	)
	state.Viewport.MoveDown(len(state.View))

	NewRenderer(screen).Render(state)

	// Three rows fit in a six-line terminal.
	for i, want := range []string{"a.mp3", "extras/", "film.mkv"} {
		if got := rowText(screen, statepkg.ListStartY+i); got != want {
			t.Fatalf("row %d = %q, want %q", i, got, want)
		}
	}
	if got := rowText(screen, 4); strings.Contains(got, "z.txt") {
		t.Fatalf("entry outside the window leaked onto the message line: %q", got)
	}

	theme := GetColorTheme()
	if fg, attr := cellStyle(screen, 0, 2); fg != theme.DirectoryFg || attr&tcell.AttrReverse == 0 {
		t.Fatalf("selected directory row: fg=%v attr=%v", fg, attr)
	}
	if _, attr := cellStyle(screen, 39, 2); attr&tcell.AttrReverse == 0 {
		t.Fatalf("selection should span the full row")
	}
	if fg, attr := cellStyle(screen, 0, 1); fg != theme.AudioFg || attr&tcell.AttrReverse != 0 {
		t.Fatalf("audio row: fg=%v attr=%v", fg, attr)
	}
	if fg, _ := cellStyle(screen, 0, 3); fg != theme.VideoFg {
		t.Fatalf("video row fg=%v", fg)
	}
}

func TestRenderHighlightsRememberedItem(t *testing.T) {
	screen := newTestScreen(t, 40, 8)
	state := newTestState(t, 8,
		statepkg.FileEntry{Name: "a.mkv", Size: 1},
		statepkg.FileEntry{Name: "b.mkv", Size: 1},
	)
	state.LastItem = state.View[1].FullPath

	NewRenderer(screen).Render(state)

	theme := GetColorTheme()
	if fg, _ := cellStyle(screen, 0, 2); fg != theme.LastItemFg {
		t.Fatalf("remembered item fg=%v, want %v", fg, theme.LastItemFg)
	}
	if fg, _ := cellStyle(screen, 0, 1); fg != theme.VideoFg {
		t.Fatalf("other video fg=%v", fg)
	}
}

func TestRenderHighlightsSearchWords(t *testing.T) {
	screen := newTestScreen(t, 40, 8)
	state := newTestState(t, 8, statepkg.FileEntry{Name: "foo bar.mkv", Size: 1})
	state.Filter.Search = "BAR"

	NewRenderer(screen).Render(state)

	theme := GetColorTheme()
	for x := 4; x < 7; x++ {
		if fg, _ := cellStyle(screen, x, 1); fg != theme.MatchFg {
			t.Fatalf("column %d should be highlighted, fg=%v", x, fg)
		}
	}
	if fg, _ := cellStyle(screen, 0, 1); fg == theme.MatchFg {
		t.Fatalf("unmatched column should not be highlighted")
	}
	if got := rowText(screen, 7); got != ":BAR" {
		t.Fatalf("search line = %q, want %q", got, ":BAR")
	}
}

func TestRenderMessageAndHints(t *testing.T) {
	screen := newTestScreen(t, 120, 8)
	state := newTestState(t, 8, statepkg.FileEntry{Name: "a.mkv", Size: 1})
	r := NewRenderer(screen)

	r.Render(state)
	if got := rowText(screen, 6); !strings.Contains(got, "F12: quit") {
		t.Fatalf("expected key hints without a message, got %q", got)
	}
	if got := rowText(screen, 7); got != ":" {
		t.Fatalf("empty search line = %q", got)
	}

	state.Message = "Saved for later playback: a.mkv"
	r.Render(state)
	if got := rowText(screen, 6); got != state.Message {
		t.Fatalf("message line = %q", got)
	}

	state.LastError = errors.New("start mpv: not found")
	r.Render(state)
	if got := rowText(screen, 6); got != "start mpv: not found" {
		t.Fatalf("error line = %q", got)
	}
	if fg, _ := cellStyle(screen, 0, 6); fg != GetColorTheme().ErrorFg {
		t.Fatalf("error should use the error color, fg=%v", fg)
	}
}

func TestRenderSanitizesNames(t *testing.T) {
	screen := newTestScreen(t, 40, 6)
	state := newTestState(t, 6, statepkg.FileEntry{Name: "evil\x1b[2J.mp3", Size: 1})

	NewRenderer(screen).Render(state)

	if got := rowText(screen, 1); got != "evil?[2J.mp3" {
		t.Fatalf("row = %q", got)
	}
}

func TestRenderTruncatesLongNames(t *testing.T) {
	screen := newTestScreen(t, 10, 6)
	state := newTestState(t, 6, statepkg.FileEntry{Name: "a-very-long-name.mkv", Size: 1})

	NewRenderer(screen).Render(state)

	if got := rowText(screen, 1); got != "a-very-lo…" {
		t.Fatalf("row = %q", got)
	}
}

func TestRenderToleratesTinyScreens(t *testing.T) {
	sizes := [][2]int{{1, 1}, {5, 2}, {3, 3}, {1, 4}, {0, 0}}
	for _, size := range sizes {
		screen := newTestScreen(t, size[0], size[1])
		state := newTestState(t, size[1], statepkg.FileEntry{Name: "movie.mkv", Size: 1})
		state.Filter.Search = "movie"
		NewRenderer(screen).Render(state)
	}
}

func TestBuildFooterHelpSegments(t *testing.T) {
	state := &statepkg.AppState{
		View: []statepkg.FileEntry{{Name: "a.mkv"}},
	}
	got := buildFooterHelpSegments(state)
	if got[0] != "→: play" || got[len(got)-1] != "F12: quit" {
		t.Fatalf("default hints = %v", got)
	}

	state.LastItem = "/m/a.mkv"
	state.PIDs = []int{1}
	got = buildFooterHelpSegments(state)
	joined := strings.Join(got, " ")
	if !strings.Contains(joined, "F8: restore") || !strings.Contains(joined, "F9: close player") {
		t.Fatalf("expected restore and close hints, got %v", got)
	}

	state.Filter.Search = "x"
	if got := buildFooterHelpSegments(state); got[0] != "type: search" {
		t.Fatalf("search hints = %v", got)
	}
	if buildFooterHelpSegments(nil) != nil {
		t.Fatalf("nil state should produce no hints")
	}
}
