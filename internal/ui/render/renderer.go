package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/ripxorip/aerojump.nvim/internal/state"
	textutil "github.com/ripxorip/aerojump.nvim/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen   tcell.Screen
	theme    ColorTheme
	tabWidth int
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, tabWidth int) *Renderer {
	if tabWidth <= 0 {
		tabWidth = textutil.DefaultTabWidth
	}
	return &Renderer{
		screen:   screen,
		theme:    GetColorTheme(),
		tabWidth: tabWidth,
	}
}

// Render draws the plan of the current session followed by the prompt line.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	if state == nil || state.Session == nil {
		r.screen.Show()
		return
	}

	w, h := r.screen.Size()
	if state.ScreenHeight > 0 && state.ScreenHeight < h {
		h = state.ScreenHeight
	}
	plan := state.Session.Draw()
	r.drawBuffer(state, plan, w, h-1)
	r.drawStatusLine(state, w, h)
	r.placeCursor(state, plan, h-1)

	r.screen.Show()
}

func (r *Renderer) drawBuffer(state *statepkg.AppState, plan statepkg.Plan, w, rows int) {
	byRow := rowHighlights(plan.Highlights)
	for y := 0; y < rows; y++ {
		row := state.ScrollOffset + y
		if row >= len(plan.Lines) {
			break
		}
		r.drawRow(y, w, plan.Lines[row], byRow[row])
	}
}

// drawStatusLine renders the prompt on the left and the result summary on
// the right of the last row.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	if h <= 0 {
		return
	}
	y := h - 1
	normalStyle := tcell.StyleDefault.Background(r.theme.PromptBg).Foreground(r.theme.PromptFg)
	rejectStyle := tcell.StyleDefault.Background(r.theme.RejectBg).Foreground(r.theme.RejectFg)

	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, normalStyle)
	}

	prompt := formatPrompt(state)
	endX := r.drawTextLine(0, y, w, prompt, normalStyle)

	style := normalStyle
	if state.Rejected {
		style = rejectStyle
	}
	// One blank column separates the prompt from the status. A rejected
	// keystroke is always reported, over the end of the prompt if needed.
	avail := w - endX - 1
	parts := statusParts(state)
	if state.Rejected && avail < textutil.DisplayWidth(parts[0]) {
		avail = w
	}
	if avail <= 0 {
		return
	}
	status := textutil.Truncate(fitStatus(parts, avail), avail)
	statusWidth := textutil.DisplayWidth(status)
	r.drawTextLine(w-statusWidth, y, statusWidth, status, style)
}

// placeCursor shows the terminal cursor on the selected match, or on the
// original position when nothing is selected.
func (r *Renderer) placeCursor(state *statepkg.AppState, plan statepkg.Plan, rows int) {
	row := plan.Cursor.Line - 1
	y := row - state.ScrollOffset
	if row < 0 || row >= len(plan.Lines) || y < 0 || y >= rows {
		r.screen.HideCursor()
		return
	}
	x := textutil.ColumnOf(plan.Lines[row], plan.Cursor.Col, r.tabWidth)
	r.screen.ShowCursor(x, y)
}
