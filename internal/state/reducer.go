package state

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned by Reduce for actions it cannot handle.
var ErrUnknownAction = errors.New("unknown action")

// StateReducer applies actions to an AppState.
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce mutates state in place and returns it.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	if state == nil || state.Session == nil {
		return state, fmt.Errorf("reduce %T: no session", action)
	}

	switch a := action.(type) {

	// ===== FILTER =====

	case FilterCharAction:
		if state.Done {
			return state, nil
		}
		r.setQuery(state, state.Query+string(a.Char))
		return state, nil

	case FilterBackspaceAction:
		if state.Done || state.Query == "" {
			return state, nil
		}
		runes := []rune(state.Query)
		r.setQuery(state, string(runes[:len(runes)-1]))
		return state, nil

	case FilterSetAction:
		if state.Done {
			return state, nil
		}
		r.setQuery(state, a.Query)
		return state, nil

	// ===== NAVIGATION =====

	case LineUpAction:
		state.Session.CursorLineUp()
		state.updateScrollVisibility()
		return state, nil

	case LineDownAction:
		state.Session.CursorLineDown()
		state.updateScrollVisibility()
		return state, nil

	case MatchNextAction:
		state.Session.CursorMatchNext()
		state.updateScrollVisibility()
		return state, nil

	case MatchPrevAction:
		state.Session.CursorMatchPrev()
		state.updateScrollVisibility()
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.updateScrollVisibility()
		return state, nil

	// ===== APPLICATION =====

	case SelectAction:
		state.Done = true
		state.Selected = true
		state.Result = state.Session.FinalCursor()
		return state, nil

	case ExitAction:
		state.Done = true
		state.Selected = false
		state.Result = state.Session.Origin()
		return state, nil

	case SuspendAction:
		return state, nil

	default:
		return state, fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
}

// setQuery applies query to the session. A non-empty query that matches
// nothing is rolled back: the previous query is re-applied and Rejected is
// set so the front end can signal it.
func (r *StateReducer) setQuery(state *AppState, query string) {
	prev := state.Query
	state.Rejected = false

	if !state.Session.ApplyFilter(query) && query != "" {
		state.Rejected = true
		state.Session.ApplyFilter(prev)
		query = prev
	}

	state.Query = query
	state.ScrollOffset = 0
	state.updateScrollVisibility()
}
