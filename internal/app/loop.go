package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/ripxorip/aerojump.nvim/internal/state"
	inputui "github.com/ripxorip/aerojump.nvim/internal/ui/input"
	renderui "github.com/ripxorip/aerojump.nvim/internal/ui/render"
	"pkt.systems/pslog"
)

var newScreen = tcell.NewScreen

// NewApplication opens the terminal and prepares a session for cfg.
func NewApplication(ctx context.Context, cfg Config) (*Application, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	app, err := newApplicationWithScreen(ctx, screen, cfg)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplicationWithScreen(ctx context.Context, screen tcell.Screen, cfg Config) (*Application, error) {
	logger := pslog.Ctx(ctx)

	w, h := screen.Size()
	if cfg.Height > 0 && cfg.Height < h {
		h = cfg.Height
	}
	viewport := initialViewport(cfg.Origin, cfg.TopLine, h-1, len(cfg.Lines))

	session := statepkg.NewSession(cfg.Lines, cfg.Origin, viewport, cfg.Options)
	state := statepkg.NewAppState(session, w, h)

	actionCh := make(chan statepkg.Action, 16)
	app := &Application{
		screen:    screen,
		state:     state,
		reducer:   statepkg.NewStateReducer(),
		renderer:  renderui.NewRenderer(screen, cfg.TabWidth),
		input:     inputui.NewInputHandler(actionCh, cfg.Keymap),
		actionCh:  actionCh,
		maxHeight: cfg.Height,
	}

	if cfg.InitialQuery != "" {
		if _, err := app.reducer.Reduce(state, statepkg.FilterSetAction{Query: cfg.InitialQuery}); err != nil {
			return nil, err
		}
		if state.Rejected {
			logger.Debug("initial query has no match", "query", cfg.InitialQuery)
		}
	}

	var step statepkg.Action
	switch cfg.Resume {
	case ResumeNone:
	case ResumeNext:
		step = statepkg.MatchNextAction{}
	case ResumePrev:
		step = statepkg.MatchPrevAction{}
	default:
		return nil, fmt.Errorf("unknown resume direction %q", cfg.Resume)
	}
	if step != nil {
		if _, err := app.reducer.Reduce(state, step); err != nil {
			return nil, err
		}
	}

	logger.Debug("application ready",
		"lines", len(cfg.Lines),
		"mode", string(session.Mode()),
		"width", w,
		"height", h,
		"top_line", viewport.TopLine,
	)
	return app, nil
}

// initialViewport returns the viewport the jump starts from. Without an
// explicit top line the origin is centered.
func initialViewport(origin statepkg.Position, topLine, visible, total int) statepkg.Viewport {
	if visible < 1 {
		visible = 1
	}
	if topLine <= 0 {
		topLine = origin.Line - visible/2
		if maxTop := total - visible + 1; topLine > maxTop {
			topLine = maxTop
		}
	}
	if topLine < 1 {
		topLine = 1
	}
	return statepkg.Viewport{TopLine: topLine, VisibleLines: visible}
}

// Run processes terminal events until the jump is confirmed or cancelled,
// or ctx is done.
func (app *Application) Run(ctx context.Context) (Result, error) {
	defer app.screen.Fini()
	logger := pslog.Ctx(ctx)

	app.renderer.Render(app.state)
	renderPending := false

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case <-ctx.Done():
			logger.Debug("jump interrupted", "err", ctx.Err())
			return app.result(), ctx.Err()
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(ctx, action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions(ctx) {
			renderPending = true
		}
		if app.state.Done {
			app.shouldQuit = true
		}
	}

	result := app.result()
	logger.Debug("jump finished",
		"selected", result.Selected,
		"line", result.Position.Line,
		"col", result.Position.Col,
		"query", result.Query,
	)
	return result, nil
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		// The handler reports the end of the session; the queued action
		// settles the outcome, so keep running until it is reduced.
		app.input.ProcessEvent(ev)
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) processActions(ctx context.Context) bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(ctx, action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(ctx context.Context, action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch a := action.(type) {
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.ResizeAction:
		if app.maxHeight > 0 && a.Height > app.maxHeight {
			action = statepkg.ResizeAction{Width: a.Width, Height: app.maxHeight}
		}
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		pslog.Ctx(ctx).Warn("action failed", "action", fmt.Sprintf("%T", action), "err", err)
		return false
	}
	return true
}
