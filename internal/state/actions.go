package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== FILTER ACTIONS =====

type FilterCharAction struct {
	Char rune
}
type FilterBackspaceAction struct{}

// FilterSetAction replaces the whole query, e.g. when seeding it from the
// word under the cursor or from a resumed session.
type FilterSetAction struct {
	Query string
}

// ===== NAVIGATION ACTIONS =====

type LineUpAction struct{}
type LineDownAction struct{}
type MatchNextAction struct{}
type MatchPrevAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type SelectAction struct{}  // jump to the selected match
type ExitAction struct{}    // leave without moving
type SuspendAction struct{} // handled by the front end (Ctrl+Z)
