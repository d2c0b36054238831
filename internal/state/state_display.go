package state

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	separatorWidth   = 40
	spacePlaceholder = " "
)

// Draw returns the drawable projection of the current state. Without a
// selection the source lines come back verbatim with the original cursor
// and viewport top, so the host can restore its placement.
func (s *Session) Draw() Plan {
	if !s.hasResults {
		return Plan{
			Lines:   s.sourceTexts(),
			Cursor:  s.origin,
			TopLine: s.viewport.TopLine,
		}
	}

	var lines []string
	switch s.mode {
	case ModeSpace:
		lines = make([]string, len(s.lines))
		for i, line := range s.lines {
			if len(line.Matches) > 0 {
				lines[i] = line.Text
			} else {
				lines[i] = spacePlaceholder
			}
		}
	case ModeContext:
		lines = append([]string(nil), s.rows...)
	default:
		lines = s.sourceTexts()
	}

	return Plan{
		Lines:      lines,
		Highlights: s.Highlights(),
		Cursor:     s.Cursor(),
		Filtered:   true,
	}
}

// Highlights returns a copy of the current highlight list.
func (s *Session) Highlights() []Highlight {
	if len(s.highlights) == 0 {
		return nil
	}
	out := make([]Highlight, len(s.highlights))
	copy(out, s.highlights)
	return out
}

// RowCount returns how many rows Draw produces.
func (s *Session) RowCount() int {
	if s.hasResults && s.mode == ModeContext {
		return len(s.rows)
	}
	return len(s.lines)
}

func (s *Session) sourceTexts() []string {
	lines := make([]string, len(s.lines))
	for i, line := range s.lines {
		lines[i] = line.Text
	}
	return lines
}

// rowFor maps a line to its 0-based output row.
func (s *Session) rowFor(line *Line) int {
	if s.mode == ModeContext {
		return line.RenderedRow - 1
	}
	return line.Num - 1
}

// updateHighlights rebuilds match highlights for every filtered line and
// cursor highlights for the selected span, which are emitted last so they
// paint over the match highlights.
func (s *Session) updateHighlights() {
	if !s.hasResults {
		s.highlights = nil
		return
	}

	var highlights []Highlight
	if s.mode == ModeDim {
		for _, line := range s.lines {
			if len(line.Matches) == 0 {
				highlights = append(highlights, Highlight{Kind: HighlightDim, Line: line.Num - 1, ColStart: 0, ColEnd: -1})
			}
		}
	}

	for _, line := range s.filtered {
		row := s.rowFor(line)
		for _, span := range line.Matches {
			for _, pos := range span {
				highlights = append(highlights, Highlight{Kind: HighlightMatch, Line: row, ColStart: pos - 1, ColEnd: pos})
			}
		}
	}

	current := s.filtered[s.cursorLine]
	row := s.rowFor(current)
	for _, pos := range current.Matches[s.cursorMatch] {
		highlights = append(highlights, Highlight{Kind: HighlightCursor, Line: row, ColStart: pos - 1, ColEnd: pos})
	}

	if s.mode == ModeContext {
		for _, sep := range s.separators {
			highlights = append(highlights, Highlight{Kind: HighlightDim, Line: sep, ColStart: 0, ColEnd: -1})
		}
	}
	s.highlights = highlights
}

// layoutContext expands every filtered line into a block: a separator row,
// up to contextBefore rows above, the line itself and up to contextAfter
// rows below. RenderedRow is recorded on each filtered line.
func (s *Session) layoutContext() {
	rows := make([]string, 0, len(s.filtered)*(2+s.contextBefore+s.contextAfter))
	separators := make([]int, 0, len(s.filtered))

	for _, line := range s.filtered {
		separators = append(separators, len(rows))
		rows = append(rows, separatorRow(line.Num))

		for num := max(1, line.Num-s.contextBefore); num < line.Num; num++ {
			rows = append(rows, s.lines[num-1].Text)
		}

		rows = append(rows, line.Text)
		line.RenderedRow = len(rows)

		last := min(len(s.lines), line.Num+s.contextAfter)
		for num := line.Num + 1; num <= last; num++ {
			rows = append(rows, s.lines[num-1].Text)
		}
	}

	s.rows = rows
	s.separators = separators
}

func separatorRow(num int) string {
	sep := fmt.Sprintf("----------- Line: %d ", num)
	if n := utf8.RuneCountInString(sep); n < separatorWidth {
		sep += strings.Repeat("-", separatorWidth-n)
	}
	return sep
}
