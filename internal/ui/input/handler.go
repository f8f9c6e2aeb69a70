package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mpl/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event asked the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyF12:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}

	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyHome:
		ih.actionChan <- statepkg.NavigateHomeAction{}
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.NavigateEndAction{}
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}

	case tcell.KeyRight:
		ih.actionChan <- statepkg.ChooseAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.ChooseAction{Remember: true}
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.GoUpAction{}

	case tcell.KeyF5:
		ih.actionChan <- statepkg.RefreshDirectoryAction{}
	case tcell.KeyF6:
		ih.actionChan <- statepkg.ToggleDirectoriesAction{}
	case tcell.KeyF7:
		ih.actionChan <- statepkg.ToggleHiddenFilesAction{}
	case tcell.KeyF8:
		ih.actionChan <- statepkg.RestoreLastItemAction{}
	case tcell.KeyF9:
		ih.actionChan <- statepkg.ClosePlayerAction{}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.FilterBackspaceAction{}
	case tcell.KeyDelete:
		ih.actionChan <- statepkg.FilterClearAction{}

	case tcell.KeyRune:
		if r := ev.Rune(); isSearchRune(r) && ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) == 0 {
			ih.actionChan <- statepkg.FilterCharAction{Char: r}
		}
	}
	return true
}

// isSearchRune accepts letters, digits, punctuation, symbols and space.
func isSearchRune(r rune) bool {
	return r == ' ' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.IsPunct(r) || unicode.IsSymbol(r)
}
