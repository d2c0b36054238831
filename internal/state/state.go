package state

import (
	search "github.com/ripxorip/aerojump.nvim/internal/search"
)

type MatchSpan = search.MatchSpan
type Matcher = search.Matcher

// ===== ENGINE DEFINITIONS =====

// Position is a cursor location: Line is 1-based, Col is a 0-based rune column.
type Position struct {
	Line int
	Col  int
}

// Viewport is the host's visible window at session start. It is only used
// to break ties when choosing the initial match.
type Viewport struct {
	TopLine      int // 1-based number of the first visible line
	VisibleLines int
}

// Line is one source line together with the results of the latest filter pass.
type Line struct {
	Text string
	Num  int // 1-based position in the source

	Matches []MatchSpan
	Scores  []float64

	// FilteredIndex is the position within the current filtered set, -1 when
	// the line does not match.
	FilteredIndex int
	// RenderedRow is the 1-based output row of the line in context mode.
	RenderedRow int

	folded []rune
}

func newLine(text string, num int) *Line {
	return &Line{
		Text:          text,
		Num:           num,
		FilteredIndex: -1,
		folded:        search.FoldRunes(text),
	}
}

func (l *Line) reset() {
	l.Matches = nil
	l.Scores = nil
	l.FilteredIndex = -1
	l.RenderedRow = 0
}

// BestMatch returns the index of the highest scoring span (first wins ties).
func (l *Line) BestMatch() int {
	return search.BestIndex(l.Scores)
}

// BestScore returns the score of the best span, 0 when the line has none.
func (l *Line) BestScore() float64 {
	return search.BestScore(l.Scores)
}

// HighlightKind names the group a host should paint a highlight with.
type HighlightKind string

const (
	HighlightMatch  HighlightKind = "MatchHighlight"
	HighlightCursor HighlightKind = "CursorHighlight"
	HighlightDim    HighlightKind = "Dim"
)

// Highlight covers [ColStart, ColEnd) of a 0-based output row. ColEnd of -1
// extends the highlight to the end of the row.
type Highlight struct {
	Kind     HighlightKind
	Line     int
	ColStart int
	ColEnd   int
}

// Plan is everything a host needs to redraw after an engine event.
type Plan struct {
	Lines      []string
	Highlights []Highlight
	Cursor     Position
	// TopLine is the viewport top to restore when the plan is unfiltered,
	// 0 when the host should keep its own scroll position.
	TopLine  int
	Filtered bool
}

// ===== INTERACTIVE STATE =====

// AppState drives one interactive session: the query being typed, the
// engine, screen geometry and the outcome once the session ends.
type AppState struct {
	Session *Session
	Query   string

	// Rejected is set when the last keystroke was rolled back because it
	// emptied the result set.
	Rejected bool

	// Dimensions
	ScreenWidth  int
	ScreenHeight int
	ScrollOffset int

	// Outcome
	Done     bool
	Selected bool
	Result   Position
}

// NewAppState wraps a session with an empty query.
func NewAppState(session *Session, width, height int) *AppState {
	state := &AppState{
		Session:      session,
		ScreenWidth:  width,
		ScreenHeight: height,
		Result:       session.Origin(),
	}
	state.updateScrollVisibility()
	return state
}
