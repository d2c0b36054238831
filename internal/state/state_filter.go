package state

import (
	"slices"
	"sort"
	"strings"

	search "github.com/ripxorip/aerojump.nvim/internal/search"
)

// ApplyFilter re-filters every line against query and repositions the
// cursor. It returns false when nothing matches; the session is then in its
// no-results state and callers are expected to roll the query back. An
// empty query clears the filter and also returns false.
func (s *Session) ApplyFilter(query string) bool {
	prevQuery := s.query
	s.query = query

	if query == "" {
		s.clearFilter()
		s.log.logger.Debug("filter cleared")
		return false
	}

	candidates := s.lines
	narrowed := prevQuery != "" && strings.HasPrefix(query, prevQuery)
	if narrowed {
		// Lines outside the previous result set cannot match an extension
		// of the previous query, and their records are already empty.
		candidates = s.matched
	}

	pattern := search.FoldRunes(query)
	matched := make([]*Line, 0, len(candidates))
	for _, line := range candidates {
		line.reset()
		line.Matches, line.Scores = s.matcher.Filter(line.folded, pattern)
		if len(line.Matches) > 0 {
			matched = append(matched, line)
		}
	}

	s.matched = matched
	s.filtered = slices.Clone(matched)
	if s.mode == ModeContext {
		sort.SliceStable(s.filtered, func(i, j int) bool {
			return s.filtered[i].BestScore() > s.filtered[j].BestScore()
		})
	}
	for idx, line := range s.filtered {
		line.FilteredIndex = idx
	}

	s.hasResults = len(s.filtered) > 0
	s.log.logger.Debug("filter applied",
		"query", query,
		"candidates", len(candidates),
		"narrowed", narrowed,
		"matches", len(s.filtered),
	)
	if !s.hasResults {
		s.cursorLine, s.cursorMatch = 0, 0
		s.rows, s.separators = nil, nil
		s.highlights = nil
		return false
	}

	if s.mode == ModeContext {
		s.layoutContext()
		s.cursorLine = 0
		s.cursorMatch = s.filtered[0].BestMatch()
	} else {
		s.cursorLine, s.cursorMatch = s.setCursorToBestMatch()
	}
	s.logSelection("initial")
	s.updateHighlights()
	return true
}

func (s *Session) clearFilter() {
	for _, line := range s.lines {
		line.reset()
	}
	s.matched = nil
	s.filtered = nil
	s.hasResults = false
	s.cursorLine, s.cursorMatch = 0, 0
	s.rows, s.separators = nil, nil
	s.highlights = nil
}

// setCursorToBestMatch prefers matches inside the viewport sampled at
// session start and falls back to the whole filtered set.
func (s *Session) setCursorToBestMatch() (int, int) {
	visibleStart := s.viewport.TopLine
	visibleEnd := visibleStart + s.viewport.VisibleLines

	var visible []*Line
	for _, line := range s.filtered {
		if line.Num >= visibleStart && line.Num <= visibleEnd {
			visible = append(visible, line)
		}
	}
	if len(visible) > 0 {
		return s.bestCursorIn(visible)
	}
	return s.bestCursorIn(s.filtered)
}

// bestCursorIn picks the highest scoring line, breaking ties by distance to
// the original cursor line. lines must be non-empty.
func (s *Session) bestCursorIn(lines []*Line) (int, int) {
	best := lines[0]
	bestMatch := best.BestMatch()
	bestScore := best.Scores[bestMatch]

	for _, line := range lines[1:] {
		idx := line.BestMatch()
		score := line.Scores[idx]
		closer := absInt(s.origin.Line-line.Num) < absInt(s.origin.Line-best.Num)
		if score > bestScore || (score == bestScore && closer) {
			best, bestMatch, bestScore = line, idx, score
		}
	}
	return best.FilteredIndex, bestMatch
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
