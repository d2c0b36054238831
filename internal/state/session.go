package state

import (
	search "github.com/ripxorip/aerojump.nvim/internal/search"
)

// Options selects the presentation mode of a session.
type Options struct {
	Mode          Mode
	ContextBefore int
	ContextAfter  int
}

// DefaultOptions mirrors the plugin defaults: default mode, one context row
// on each side of a match in context mode.
func DefaultOptions() Options {
	return Options{
		Mode:          ModeDefault,
		ContextBefore: 1,
		ContextAfter:  1,
	}
}

// Session is the match engine for one jump. It owns the line records and is
// discarded when the jump is confirmed or cancelled.
type Session struct {
	mode          Mode
	contextBefore int
	contextAfter  int
	matcher       *Matcher

	lines    []*Line
	matched  []*Line // matching lines in source order
	filtered []*Line // matching lines in display order

	query      string
	hasResults bool

	origin   Position
	viewport Viewport

	cursorLine  int
	cursorMatch int

	// context mode layout
	rows       []string
	separators []int

	highlights []Highlight
	log        *sessionLog
}

// NewSession builds line records for a buffer snapshot.
func NewSession(lines []string, origin Position, viewport Viewport, opts Options) *Session {
	mode := opts.Mode
	if mode == "" {
		mode = ModeDefault
	}
	s := &Session{
		mode:          mode,
		contextBefore: max(opts.ContextBefore, 0),
		contextAfter:  max(opts.ContextAfter, 0),
		matcher:       search.NewMatcher(),
		lines:         make([]*Line, len(lines)),
		origin:        origin,
		viewport:      viewport,
		log:           newSessionLog(),
	}
	for i, text := range lines {
		s.lines[i] = newLine(text, i+1)
	}
	s.log.logger.Debug("session start",
		"mode", string(mode),
		"lines", len(lines),
		"origin_line", origin.Line,
		"origin_col", origin.Col,
		"top_line", viewport.TopLine,
		"visible", viewport.VisibleLines,
	)
	return s
}

// Mode returns the presentation mode chosen at construction.
func (s *Session) Mode() Mode { return s.mode }

// Query returns the filter string of the latest ApplyFilter call.
func (s *Session) Query() string { return s.query }

// HasResults reports whether the session is positioned on a match.
func (s *Session) HasResults() bool { return s.hasResults }

// Origin returns the cursor position the session started from.
func (s *Session) Origin() Position { return s.origin }

// Viewport returns the viewport sampled at session start.
func (s *Session) Viewport() Viewport { return s.viewport }

// Lines returns every line record in source order.
func (s *Session) Lines() []*Line { return s.lines }

// FilteredLines returns the matching lines in navigation order.
func (s *Session) FilteredLines() []*Line { return s.filtered }

// Selection returns the cursor indices into the filtered set. ok is false
// when there is nothing to select.
func (s *Session) Selection() (lineIdx, matchIdx int, ok bool) {
	if !s.hasResults {
		return 0, 0, false
	}
	return s.cursorLine, s.cursorMatch, true
}

// Log returns the session debug log, one entry per line.
func (s *Session) Log() []string {
	return s.log.Lines()
}
