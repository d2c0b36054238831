package state

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how a session presents filtered lines.
type Mode string

const (
	// ModeDefault draws every source line and highlights the matches.
	ModeDefault Mode = "default"
	// ModeSpace blanks out lines without a match.
	ModeSpace Mode = "space"
	// ModeDim keeps every line but dims those without a match.
	ModeDim Mode = "dim"
	// ModeContext draws only matching lines, best first, each surrounded by
	// a few lines of context.
	ModeContext Mode = "context"
)

// ErrUnknownMode is returned by ParseMode for names it does not recognise.
var ErrUnknownMode = errors.New("unknown mode")

var modeNames = map[string]Mode{
	"default": ModeDefault,
	"space":   ModeSpace,
	"dim":     ModeDim,
	"milk":    ModeDim,
	"context": ModeContext,
	"bolt":    ModeContext,
}

// ParseMode resolves a mode name or one of its aliases. The empty string
// selects ModeDefault.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ModeDefault, nil
	}
	if mode, ok := modeNames[key]; ok {
		return mode, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownMode, name, strings.Join(ModeNames(), ", "))
}

// ModeNames lists the canonical mode names.
func ModeNames() []string {
	return []string{string(ModeDefault), string(ModeSpace), string(ModeDim), string(ModeContext)}
}
