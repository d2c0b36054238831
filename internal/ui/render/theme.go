package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/ripxorip/aerojump.nvim/internal/state"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	MatchFg    tcell.Color
	MatchBg    tcell.Color
	CursorFg   tcell.Color
	CursorBg   tcell.Color
	DimFg      tcell.Color
	PromptBg   tcell.Color
	PromptFg   tcell.Color
	RejectBg   tcell.Color
	RejectFg   tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		MatchFg:    tcell.Color33,
		MatchBg:    tcell.ColorDefault,
		CursorFg:   tcell.ColorBlack,
		CursorBg:   tcell.Color214,
		DimFg:      tcell.Color242,
		PromptBg:   tcell.ColorDefault,
		PromptFg:   tcell.ColorDefault,
		RejectBg:   tcell.ColorRed,
		RejectFg:   tcell.ColorWhite,
	}
}

func (t ColorTheme) base() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
}

// styleFor maps a highlight group onto a terminal style.
func (t ColorTheme) styleFor(kind statepkg.HighlightKind) tcell.Style {
	switch kind {
	case statepkg.HighlightMatch:
		return tcell.StyleDefault.Background(t.MatchBg).Foreground(t.MatchFg).Bold(true)
	case statepkg.HighlightCursor:
		return tcell.StyleDefault.Background(t.CursorBg).Foreground(t.CursorFg).Bold(true)
	case statepkg.HighlightDim:
		return t.base().Foreground(t.DimFg)
	default:
		return t.base()
	}
}
