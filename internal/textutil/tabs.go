package textutil

import (
	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// Cell is one source rune placed on a terminal row.
type Cell struct {
	Rune  rune // rune to draw, already sanitized
	Index int  // 0-based rune index in the source text
	Col   int  // 0-based screen column of the first cell
	Width int  // number of screen columns occupied
}

// Layout places every rune of text on a row. Tabs advance to the next tab
// stop and are drawn as spaces; each source rune yields exactly one Cell so
// rune-indexed highlights map straight onto the result.
func Layout(text string, tabWidth int) []Cell {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	cells := make([]Cell, 0, len(text))
	column := 0
	index := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			cells = append(cells, Cell{Rune: ' ', Index: index, Col: column, Width: spaces})
			column += spaces
			index++
			continue
		}
		drawn := SanitizeRune(ru)
		width := runewidth.RuneWidth(drawn)
		if width < 1 {
			width = 1
		}
		cells = append(cells, Cell{Rune: drawn, Index: index, Col: column, Width: width})
		column += width
		index++
	}
	return cells
}

// ColumnOf returns the screen column where rune index idx starts. Indices
// past the end map to the column right after the last rune.
func ColumnOf(text string, idx, tabWidth int) int {
	cells := Layout(text, tabWidth)
	if idx < 0 {
		return 0
	}
	if idx < len(cells) {
		return cells[idx].Col
	}
	if len(cells) == 0 {
		return 0
	}
	last := cells[len(cells)-1]
	return last.Col + last.Width
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		width += w
	}
	return width
}

// Truncate cuts text so it fits into width columns.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "")
}
