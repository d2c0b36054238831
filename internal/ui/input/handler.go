package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/ripxorip/aerojump.nvim/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan<- statepkg.Action
	keymap     Keymap
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan<- statepkg.Action, keymap Keymap) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
		keymap:     keymap,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event ended the session.
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

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	// Bindings win over the built-in keys below.
	if cmd, ok := ih.keymap[KeyName(ev)]; ok {
		action, _ := cmd.Action()
		ih.actionChan <- action
		return !cmd.Ends()
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.ExitAction{}
		return false
	case tcell.KeyBackspace2:
		ih.actionChan <- statepkg.FilterBackspaceAction{}
		return true
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true
	case tcell.KeyCtrlU:
		ih.actionChan <- statepkg.FilterSetAction{Query: ""}
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return true
		}
		r := ev.Rune()
		if unicode.IsPrint(r) {
			ih.actionChan <- statepkg.FilterCharAction{Char: r}
		}
		return true
	default:
		return true
	}
}
