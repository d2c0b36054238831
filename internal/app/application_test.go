package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ripxorip/aerojump.nvim/internal/config"
	statepkg "github.com/ripxorip/aerojump.nvim/internal/state"
	inputui "github.com/ripxorip/aerojump.nvim/internal/ui/input"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	screen.SetSize(40, 10)
	return screen
}

func testConfig(t *testing.T, lines []string) Config {
	t.Helper()
	keymap, err := inputui.ParseKeymap(config.DefaultKeymaps())
	if err != nil {
		t.Fatalf("ParseKeymap: %v", err)
	}
	return Config{
		Lines:    lines,
		Origin:   statepkg.Position{Line: 1, Col: 0},
		Options:  statepkg.DefaultOptions(),
		Keymap:   keymap,
		TabWidth: 4,
	}
}

func runWithTimeout(t *testing.T, app *Application) (Result, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.Run(ctx)
}

func TestRunSelectsMatch(t *testing.T) {
	screen := newTestScreen(t)
	app, err := newApplicationWithScreen(context.Background(), screen, testConfig(t, []string{"foo bar", "xxbarxx", "nomatch"}))
	if err != nil {
		t.Fatalf("newApplicationWithScreen: %v", err)
	}

	for _, r := range "bar" {
		screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	screen.InjectKey(tcell.KeyCtrlJ, 0, tcell.ModCtrl)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	result, err := runWithTimeout(t, app)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Selected {
		t.Fatalf("expected a selection")
	}
	if result.Position != (statepkg.Position{Line: 2, Col: 2}) {
		t.Fatalf("Position = %+v, want {2 2}", result.Position)
	}
	if result.Query != "bar" {
		t.Fatalf("Query = %q, want bar", result.Query)
	}
	if len(result.Log) == 0 {
		t.Fatalf("expected session log entries")
	}
}

func TestRunExitReturnsOrigin(t *testing.T) {
	screen := newTestScreen(t)
	cfg := testConfig(t, []string{"alpha", "beta", "gamma"})
	cfg.Origin = statepkg.Position{Line: 2, Col: 1}
	app, err := newApplicationWithScreen(context.Background(), screen, cfg)
	if err != nil {
		t.Fatalf("newApplicationWithScreen: %v", err)
	}

	screen.InjectKey(tcell.KeyRune, 'g', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	result, err := runWithTimeout(t, app)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Selected {
		t.Fatalf("exit should not select")
	}
	if result.Position != cfg.Origin {
		t.Fatalf("Position = %+v, want origin %+v", result.Position, cfg.Origin)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	screen := newTestScreen(t)
	app, err := newApplicationWithScreen(context.Background(), screen, testConfig(t, []string{"alpha"}))
	if err != nil {
		t.Fatalf("newApplicationWithScreen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := app.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestInitialQueryAndResume(t *testing.T) {
	screen := newTestScreen(t)
	cfg := testConfig(t, []string{"foo foo", "bar", "foo"})
	cfg.InitialQuery = "foo"
	cfg.Resume = ResumeNext

	app, err := newApplicationWithScreen(context.Background(), screen, cfg)
	if err != nil {
		t.Fatalf("newApplicationWithScreen: %v", err)
	}

	state := app.State()
	if state.Query != "foo" {
		t.Fatalf("Query = %q, want foo", state.Query)
	}
	lineIdx, matchIdx, ok := state.Session.Selection()
	if !ok || lineIdx != 0 || matchIdx != 1 {
		t.Fatalf("selection = (%d, %d, %v), want (0, 1, true)", lineIdx, matchIdx, ok)
	}
}

func TestInitialQueryWithoutMatchStaysUnfiltered(t *testing.T) {
	screen := newTestScreen(t)
	cfg := testConfig(t, []string{"alpha"})
	cfg.InitialQuery = "zzz"

	app, err := newApplicationWithScreen(context.Background(), screen, cfg)
	if err != nil {
		t.Fatalf("newApplicationWithScreen: %v", err)
	}
	if app.State().Query != "" || app.State().Session.HasResults() {
		t.Fatalf("expected an unfiltered session, got query %q", app.State().Query)
	}
}

func TestUnknownResumeDirection(t *testing.T) {
	screen := newTestScreen(t)
	cfg := testConfig(t, []string{"alpha"})
	cfg.Resume = "sideways"

	if _, err := newApplicationWithScreen(context.Background(), screen, cfg); err == nil {
		t.Fatalf("expected an error for an unknown resume direction")
	}
}

func TestHeightCapsScreen(t *testing.T) {
	screen := newTestScreen(t)
	cfg := testConfig(t, []string{"a", "b", "c"})
	cfg.Height = 4

	app, err := newApplicationWithScreen(context.Background(), screen, cfg)
	if err != nil {
		t.Fatalf("newApplicationWithScreen: %v", err)
	}
	if app.State().ScreenHeight != 4 {
		t.Fatalf("ScreenHeight = %d, want 4", app.State().ScreenHeight)
	}

	app.handleAction(context.Background(), statepkg.ResizeAction{Width: 80, Height: 50})
	if app.State().ScreenHeight != 4 {
		t.Fatalf("ScreenHeight after resize = %d, want 4", app.State().ScreenHeight)
	}
}

func TestInitialViewport(t *testing.T) {
	tests := []struct {
		name    string
		origin  int
		topLine int
		visible int
		total   int
		want    statepkg.Viewport
	}{
		{"explicit top", 50, 40, 20, 100, statepkg.Viewport{TopLine: 40, VisibleLines: 20}},
		{"centered", 50, 0, 20, 100, statepkg.Viewport{TopLine: 40, VisibleLines: 20}},
		{"near start", 3, 0, 20, 100, statepkg.Viewport{TopLine: 1, VisibleLines: 20}},
		{"near end", 98, 0, 20, 100, statepkg.Viewport{TopLine: 81, VisibleLines: 20}},
		{"short buffer", 2, 0, 20, 5, statepkg.Viewport{TopLine: 1, VisibleLines: 20}},
	}
	for _, tt := range tests {
		got := initialViewport(statepkg.Position{Line: tt.origin}, tt.topLine, tt.visible, tt.total)
		if got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
