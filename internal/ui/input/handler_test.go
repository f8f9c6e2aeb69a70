package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mpl/internal/state"
)

func processKey(t *testing.T, key tcell.Key, r rune, mod tcell.ModMask) (statepkg.Action, bool, bool) {
	t.Helper()
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)

	cont := handler.ProcessEvent(tcell.NewEventKey(key, r, mod))
	select {
	case action := <-actionChan:
		return action, true, cont
	default:
		return nil, false, cont
	}
}

func TestKeyMap(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		want statepkg.Action
	}{
		{"down", tcell.KeyDown, statepkg.NavigateDownAction{}},
		{"up", tcell.KeyUp, statepkg.NavigateUpAction{}},
		{"home", tcell.KeyHome, statepkg.NavigateHomeAction{}},
		{"end", tcell.KeyEnd, statepkg.NavigateEndAction{}},
		{"page down", tcell.KeyPgDn, statepkg.ScrollPageDownAction{}},
		{"page up", tcell.KeyPgUp, statepkg.ScrollPageUpAction{}},
		{"right chooses", tcell.KeyRight, statepkg.ChooseAction{}},
		{"enter chooses and remembers", tcell.KeyEnter, statepkg.ChooseAction{Remember: true}},
		{"left goes up", tcell.KeyLeft, statepkg.GoUpAction{}},
		{"f5 refreshes", tcell.KeyF5, statepkg.RefreshDirectoryAction{}},
		{"f6 toggles dirs", tcell.KeyF6, statepkg.ToggleDirectoriesAction{}},
		{"f7 toggles hidden", tcell.KeyF7, statepkg.ToggleHiddenFilesAction{}},
		{"f8 restores", tcell.KeyF8, statepkg.RestoreLastItemAction{}},
		{"f9 closes player", tcell.KeyF9, statepkg.ClosePlayerAction{}},
		{"backspace", tcell.KeyBackspace, statepkg.FilterBackspaceAction{}},
		{"backspace2", tcell.KeyBackspace2, statepkg.FilterBackspaceAction{}},
		{"delete clears", tcell.KeyDelete, statepkg.FilterClearAction{}},
		{"ctrl+z suspends", tcell.KeyCtrlZ, statepkg.SuspendAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok, cont := processKey(t, tt.key, 0, 0)
			if !ok {
				t.Fatalf("expected an action")
			}
			if action != tt.want {
				t.Fatalf("got %#v, want %#v", action, tt.want)
			}
			if !cont {
				t.Fatalf("key should not stop the loop")
			}
		})
	}
}

func TestQuitKeysStopProcessing(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyCtrlC, tcell.KeyF12} {
		action, ok, cont := processKey(t, key, 0, 0)
		if !ok {
			t.Fatalf("key %v: expected QuitAction", key)
		}
		if _, isQuit := action.(statepkg.QuitAction); !isQuit {
			t.Fatalf("key %v: got %T", key, action)
		}
		if cont {
			t.Fatalf("key %v: expected processing to stop", key)
		}
	}
}

func TestPrintableRunesAppendToSearch(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '7', ' ', '.', '-', 'ż', '+'} {
		action, ok, _ := processKey(t, tcell.KeyRune, r, 0)
		if !ok {
			t.Fatalf("rune %q: expected FilterCharAction", r)
		}
		if got, isChar := action.(statepkg.FilterCharAction); !isChar || got.Char != r {
			t.Fatalf("rune %q: got %#v", r, action)
		}
	}
}

func TestNonPrintableRunesAreIgnored(t *testing.T) {
	if _, ok, _ := processKey(t, tcell.KeyRune, '\u200b', 0); ok {
		t.Fatalf("zero-width space should not reach the search")
	}
	if _, ok, _ := processKey(t, tcell.KeyRune, 'x', tcell.ModAlt); ok {
		t.Fatalf("alt-modified rune should be ignored")
	}
}

func TestResizeEmitsDimensions(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)

	if !handler.ProcessEvent(tcell.NewEventResize(100, 40)) {
		t.Fatalf("resize should not stop the loop")
	}
	action := <-actionChan
	if got, ok := action.(statepkg.ResizeAction); !ok || got.Width != 100 || got.Height != 40 {
		t.Fatalf("got %#v", action)
	}
}

func TestUnmappedKeysEmitNothing(t *testing.T) {
	if _, ok, cont := processKey(t, tcell.KeyTab, 0, 0); ok || !cont {
		t.Fatalf("tab should be ignored")
	}
}
