package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/ripxorip/aerojump.nvim/internal/state"
)

// Command is a bindable session command.
type Command string

const (
	CmdMatchPrev Command = "match_prev"
	CmdMatchNext Command = "match_next"
	CmdLineUp    Command = "line_up"
	CmdLineDown  Command = "line_down"
	CmdSelect    Command = "select"
	CmdExit      Command = "exit"
)

var (
	ErrUnknownKey     = errors.New("unknown key")
	ErrUnknownCommand = errors.New("unknown command")
)

var commandActions = map[Command]statepkg.Action{
	CmdMatchPrev: statepkg.MatchPrevAction{},
	CmdMatchNext: statepkg.MatchNextAction{},
	CmdLineUp:    statepkg.LineUpAction{},
	CmdLineDown:  statepkg.LineDownAction{},
	CmdSelect:    statepkg.SelectAction{},
	CmdExit:      statepkg.ExitAction{},
}

// Action returns the reducer action for c.
func (c Command) Action() (statepkg.Action, bool) {
	action, ok := commandActions[c]
	return action, ok
}

// Ends reports whether the command finishes the session.
func (c Command) Ends() bool {
	return c == CmdSelect || c == CmdExit
}

// Keymap maps canonical key names (see KeyName) to commands.
type Keymap map[string]Command

var keyAliases = map[string]string{
	"<enter>":     "<cr>",
	"<return>":    "<cr>",
	"<escape>":    "<esc>",
	"<backspace>": "<bs>",
	"<delete>":    "<del>",
	"<pgup>":      "<pageup>",
	"<pgdn>":      "<pagedown>",
	"<c-i>":       "<tab>",
	"<c-m>":       "<cr>",
	"<c-[>":       "<esc>",
	"< >":         "<space>",
	" ":           "<space>",
}

var namedKeys = map[string]struct{}{
	"<cr>": {}, "<esc>": {}, "<tab>": {}, "<bs>": {}, "<del>": {}, "<space>": {},
	"<up>": {}, "<down>": {}, "<left>": {}, "<right>": {},
	"<home>": {}, "<end>": {}, "<pageup>": {}, "<pagedown>": {},
	"<c-space>": {},
}

// ParseKeymap validates bindings and returns a Keymap. Key names are
// case-insensitive in the bracketed form (<C-h>, <Left>, <CR>); a single
// character binds that literal rune.
func ParseKeymap(bindings map[string]string) (Keymap, error) {
	km := make(Keymap, len(bindings))
	for key, command := range bindings {
		name, err := NormalizeKeyName(key)
		if err != nil {
			return nil, err
		}
		cmd := Command(strings.ToLower(strings.TrimSpace(command)))
		if _, ok := commandActions[cmd]; !ok {
			return nil, fmt.Errorf("%w: %q bound to %s", ErrUnknownCommand, command, key)
		}
		km[name] = cmd
	}
	return km, nil
}

// NormalizeKeyName converts a user-facing key name into its canonical form.
func NormalizeKeyName(key string) (string, error) {
	if utf8.RuneCountInString(key) == 1 {
		if key == " " {
			return "<space>", nil
		}
		return key, nil
	}

	name := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := keyAliases[name]; ok {
		name = alias
	}
	if _, ok := namedKeys[name]; ok {
		return name, nil
	}
	if len(name) == 5 && (strings.HasPrefix(name, "<c-") || strings.HasPrefix(name, "<a-")) && name[4] == '>' {
		if ch := name[3]; ch >= 'a' && ch <= 'z' {
			return name, nil
		}
	}
	if strings.HasPrefix(name, "<a-") && strings.HasSuffix(name, ">") && utf8.RuneCountInString(name) == 5 {
		return name, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// KeyName returns the canonical name of a key event, or "" when the event
// has no bindable name.
func KeyName(ev *tcell.EventKey) string {
	key := ev.Key()
	switch key {
	case tcell.KeyEnter:
		return "<cr>"
	case tcell.KeyEscape:
		return "<esc>"
	case tcell.KeyTab:
		return "<tab>"
	case tcell.KeyBackspace2:
		return "<bs>"
	case tcell.KeyDelete:
		return "<del>"
	case tcell.KeyUp:
		return "<up>"
	case tcell.KeyDown:
		return "<down>"
	case tcell.KeyLeft:
		return "<left>"
	case tcell.KeyRight:
		return "<right>"
	case tcell.KeyHome:
		return "<home>"
	case tcell.KeyEnd:
		return "<end>"
	case tcell.KeyPgUp:
		return "<pageup>"
	case tcell.KeyPgDn:
		return "<pagedown>"
	case tcell.KeyCtrlSpace:
		return "<c-space>"
	case tcell.KeyRune:
		r := ev.Rune()
		mods := ev.Modifiers()
		switch {
		case mods&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z':
			return "<c-" + string(r) + ">"
		case mods&tcell.ModCtrl != 0 && r >= 'A' && r <= 'Z':
			return "<c-" + string(r-'A'+'a') + ">"
		case mods&tcell.ModAlt != 0:
			return "<a-" + string(r) + ">"
		case r == ' ':
			return "<space>"
		default:
			return string(r)
		}
	}
	// KeyCtrlH is also KeyBackspace, the code most terminals send for ^H.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "<c-" + string(rune('a'+int(key-tcell.KeyCtrlA))) + ">"
	}
	return ""
}
