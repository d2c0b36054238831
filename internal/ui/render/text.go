package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	statepkg "github.com/ripxorip/aerojump.nvim/internal/state"
	textutil "github.com/ripxorip/aerojump.nvim/internal/textutil"
)

// drawTextLine draws plain text and returns the column after the last cell.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		r.screen.SetContent(x, y, textutil.SanitizeRune(ru), nil, style)
		x += w
	}
	return x
}

// drawRow draws one plan row, styling each rune by the highlights that
// cover it. Later highlights win, so cursor highlights paint over match
// highlights.
func (r *Renderer) drawRow(y, width int, text string, highlights []statepkg.Highlight) {
	base := r.theme.base()
	for _, cell := range textutil.Layout(text, r.tabWidth) {
		if cell.Col+cell.Width > width {
			break
		}
		style := base
		for _, h := range highlights {
			if cell.Index >= h.ColStart && (h.ColEnd < 0 || cell.Index < h.ColEnd) {
				style = r.theme.styleFor(h.Kind)
			}
		}
		for i := 0; i < cell.Width; i++ {
			ru := cell.Rune
			if i > 0 {
				if cell.Rune != ' ' {
					break // wide rune occupies the following column
				}
				ru = ' '
			}
			r.screen.SetContent(cell.Col+i, y, ru, nil, style)
		}
	}
}

// rowHighlights groups highlights by output row, keeping their order.
func rowHighlights(highlights []statepkg.Highlight) map[int][]statepkg.Highlight {
	byRow := make(map[int][]statepkg.Highlight)
	for _, h := range highlights {
		byRow[h.Line] = append(byRow[h.Line], h)
	}
	return byRow
}
