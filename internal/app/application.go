package app

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/ripxorip/aerojump.nvim/internal/state"
	inputui "github.com/ripxorip/aerojump.nvim/internal/ui/input"
	renderui "github.com/ripxorip/aerojump.nvim/internal/ui/render"
)

// Resume directions for re-entering the previous query.
const (
	ResumeNone = ""
	ResumeNext = "next"
	ResumePrev = "prev"
)

// Config describes one interactive jump.
type Config struct {
	Lines   []string
	Origin  statepkg.Position
	Options statepkg.Options
	Keymap  inputui.Keymap

	// TopLine is the first visible source line when the jump starts. Zero
	// centers the origin on screen.
	TopLine int
	// Height limits the number of rows used for the buffer; zero uses the
	// full screen.
	Height   int
	TabWidth int

	InitialQuery string
	Resume       string
}

// Result is the outcome of a finished jump.
type Result struct {
	Position statepkg.Position
	Selected bool
	Query    string
	Log      []string
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	maxHeight  int
	shouldQuit bool
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

// State exposes the current application state.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

func (app *Application) result() Result {
	return Result{
		Position: app.state.Result,
		Selected: app.state.Selected,
		Query:    app.state.Query,
		Log:      app.state.Session.Log(),
	}
}
