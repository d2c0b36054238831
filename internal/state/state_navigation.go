package state

import (
	"strconv"
	"strings"

	search "github.com/ripxorip/aerojump.nvim/internal/search"
)

// CursorLineUp moves to the previous matching line, stopping at the first,
// and selects that line's best match.
func (s *Session) CursorLineUp() {
	if !s.hasResults {
		return
	}
	s.cursorLine--
	if s.cursorLine < 0 {
		s.cursorLine = 0
	}
	s.cursorMatch = s.filtered[s.cursorLine].BestMatch()
	s.logSelection("line_up")
	s.updateHighlights()
}

// CursorLineDown moves to the next matching line, stopping at the last,
// and selects that line's best match.
func (s *Session) CursorLineDown() {
	if !s.hasResults {
		return
	}
	s.cursorLine++
	if s.cursorLine >= len(s.filtered) {
		s.cursorLine = len(s.filtered) - 1
	}
	s.cursorMatch = s.filtered[s.cursorLine].BestMatch()
	s.logSelection("line_down")
	s.updateHighlights()
}

// CursorMatchNext selects the next match in the current line. Stepping past
// the last match continues on the next matching line.
func (s *Session) CursorMatchNext() {
	if !s.hasResults {
		return
	}
	s.cursorMatch++
	if s.cursorMatch >= len(s.filtered[s.cursorLine].Matches) {
		s.CursorLineDown()
		return
	}
	s.logSelection("match_next")
	s.updateHighlights()
}

// CursorMatchPrev selects the previous match in the current line. Stepping
// before the first match continues on the last match of the previous line.
func (s *Session) CursorMatchPrev() {
	if !s.hasResults {
		return
	}
	s.cursorMatch--
	if s.cursorMatch < 0 {
		s.CursorLineUp()
		s.cursorMatch = len(s.filtered[s.cursorLine].Matches) - 1
		s.updateHighlights()
		return
	}
	s.logSelection("match_prev")
	s.updateHighlights()
}

// Cursor returns where the host should place its cursor in the drawn output:
// the rendered row in context mode, the source line otherwise. Without a
// selection the original position is returned.
func (s *Session) Cursor() Position {
	if !s.hasResults {
		return s.origin
	}
	line := s.filtered[s.cursorLine]
	return Position{
		Line: s.rowFor(line) + 1,
		Col:  line.Matches[s.cursorMatch][0] - 1,
	}
}

// FinalCursor returns the selected match in source coordinates, or the
// original position when nothing is selected.
func (s *Session) FinalCursor() Position {
	if !s.hasResults {
		return s.origin
	}
	line := s.filtered[s.cursorLine]
	return Position{
		Line: line.Num,
		Col:  line.Matches[s.cursorMatch][0] - 1,
	}
}

func (s *Session) logSelection(reason string) {
	if !s.hasResults {
		return
	}
	line := s.filtered[s.cursorLine]
	s.log.logger.Debug("selection",
		"reason", reason,
		"line_index", s.cursorLine,
		"match_index", s.cursorMatch,
		"source_line", line.Num,
		"score", line.Scores[s.cursorMatch],
		"runs", formatRuns(search.Runs(line.Matches[s.cursorMatch])),
	)
}

// formatRuns renders runs as half-open 0-based column ranges, e.g. "[4,7) [9,10)".
func formatRuns(runs []search.Run) string {
	parts := make([]string, len(runs))
	for i, run := range runs {
		parts[i] = "[" + strconv.Itoa(run.Start) + "," + strconv.Itoa(run.End) + ")"
	}
	return strings.Join(parts, " ")
}

// ===== VIEWPORT =====

func (s *AppState) visibleRows() int {
	rows := s.ScreenHeight - 1 // prompt line
	if rows < 1 {
		rows = 1
	}
	return rows
}

// updateScrollVisibility keeps the selected row on screen. Without a filter
// the viewport sampled at session start is restored.
func (s *AppState) updateScrollVisibility() {
	if s.Session == nil {
		return
	}
	visibleLines := s.visibleRows()

	if !s.Session.HasResults() {
		s.ScrollOffset = s.Session.Viewport().TopLine - 1
	} else {
		row := s.Session.Cursor().Line - 1
		if row < s.ScrollOffset {
			s.ScrollOffset = row
		} else if row >= s.ScrollOffset+visibleLines {
			s.ScrollOffset = row - visibleLines + 1
		}
	}

	maxOffset := s.Session.RowCount() - visibleLines
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
}
