package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"pkt.systems/pslog"

	apppkg "github.com/ripxorip/aerojump.nvim/internal/app"
	"github.com/ripxorip/aerojump.nvim/internal/config"
	"github.com/ripxorip/aerojump.nvim/internal/fs"
	"github.com/ripxorip/aerojump.nvim/internal/history"
	statepkg "github.com/ripxorip/aerojump.nvim/internal/state"
	"github.com/ripxorip/aerojump.nvim/internal/textutil"
	inputui "github.com/ripxorip/aerojump.nvim/internal/ui/input"
)

var errNoInput = errors.New("no input: pass a file or pipe text on stdin")

type jumpFlags struct {
	configPath string
	mode       string
	input      string
	query      string
	line       int
	col        int
	top        int
	height     int
	resume     string
	showLog    bool
}

// runSession runs one interactive jump. Tests replace it.
var runSession = func(ctx context.Context, cfg apppkg.Config) (apppkg.Result, error) {
	app, err := apppkg.NewApplication(ctx, cfg)
	if err != nil {
		return apppkg.Result{}, err
	}
	return app.Run(ctx)
}

var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newJumpCmd() *cobra.Command {
	var flags jumpFlags
	cmd := &cobra.Command{
		Use:   "aerojump [file]",
		Short: "Fuzzy jump to a position in a text buffer",
		Long: `aerojump filters the lines of a file (or stdin) as you type, highlights
every match and prints the chosen position as LINE:COL.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJump(cmd, args, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/aerojump/config.yaml)")
	f := cmd.Flags()
	f.StringVarP(&flags.mode, "mode", "m", "", "display mode: "+strings.Join(statepkg.ModeNames(), ", ")+" (milk is dim, bolt is context)")
	f.StringVar(&flags.input, "input", "", "initial query source: kbd or cursor")
	f.StringVarP(&flags.query, "query", "q", "", "initial query")
	f.IntVarP(&flags.line, "line", "l", 1, "cursor line (1-based)")
	f.IntVar(&flags.col, "col", 1, "cursor column (1-based)")
	f.IntVar(&flags.top, "top", 0, "first visible line (default centers the cursor line)")
	f.IntVar(&flags.height, "height", 0, "rows to use (default full screen)")
	f.StringVar(&flags.resume, "resume", "", "re-enter the last query and step to the next or prev match")
	f.BoolVar(&flags.showLog, "show-log", false, "print the session log to stderr when done")
	return cmd
}

func runJump(cmd *cobra.Command, args []string, flags jumpFlags) error {
	ctx := cmd.Context()
	logger := pslog.Ctx(ctx)

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.mode != "" {
		cfg.Mode = flags.mode
	}
	if flags.input != "" {
		cfg.Input = flags.input
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	lines, source, err := readBuffer(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("%s: %w", source, errNoInput)
	}

	appCfg, err := buildSessionConfig(cfg, flags, lines)
	if err != nil {
		return err
	}

	var store *history.Store
	if cfg.Resume.Enabled {
		store = history.NewStore(cfg.Resume.Path)
	}
	if flags.resume != "" {
		if err := applyResume(&appCfg, store, flags.resume); err != nil {
			return err
		}
	}

	logger.Debug("starting jump",
		"source", source,
		"lines", len(lines),
		"mode", string(appCfg.Options.Mode),
		"query", appCfg.InitialQuery,
	)

	result, err := runSession(ctx, appCfg)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	if flags.showLog {
		for _, entry := range result.Log {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), entry)
		}
	}
	if !result.Selected {
		return nil
	}

	if store != nil {
		entry := history.Entry{Query: result.Query, Mode: string(appCfg.Options.Mode), Source: source}
		if err := store.Save(entry); err != nil {
			logger.Warn("could not save history", "path", store.Path(), "err", err)
		}
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\n", result.Position.Line, result.Position.Col+1)
	return err
}

// readBuffer loads the file named in args, or stdin when no file is given
// and stdin is not a terminal.
func readBuffer(args []string, stdin io.Reader) ([]string, string, error) {
	if len(args) == 1 && args[0] != "-" {
		lines, err := fs.LoadLines(args[0])
		return lines, args[0], err
	}
	if len(args) == 0 && stdinIsTerminal() {
		return nil, "", errNoInput
	}
	lines, err := fs.ReadLines(stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read stdin: %w", err)
	}
	return lines, "stdin", nil
}

// buildSessionConfig turns configuration and flags into an application
// config. The cursor is clamped into the buffer.
func buildSessionConfig(cfg config.Config, flags jumpFlags, lines []string) (apppkg.Config, error) {
	mode, err := statepkg.ParseMode(cfg.Mode)
	if err != nil {
		return apppkg.Config{}, err
	}
	keymap, err := inputui.ParseKeymap(cfg.Keymaps)
	if err != nil {
		return apppkg.Config{}, fmt.Errorf("keymaps: %w", err)
	}

	line := clamp(flags.line, 1, len(lines))
	col := clamp(flags.col, 1, len([]rune(lines[line-1]))+1) - 1

	query := flags.query
	if query == "" && cfg.Input == config.InputCursor {
		query = textutil.WordAt(lines[line-1], col)
	}

	return apppkg.Config{
		Lines:  lines,
		Origin: statepkg.Position{Line: line, Col: col},
		Options: statepkg.Options{
			Mode:          mode,
			ContextBefore: cfg.Context.Before,
			ContextAfter:  cfg.Context.After,
		},
		Keymap:       keymap,
		TopLine:      flags.top,
		Height:       flags.height,
		TabWidth:     cfg.TabWidth,
		InitialQuery: query,
	}, nil
}

// applyResume seeds the session with the stored query. Nothing is resumed
// when the store is disabled or empty.
func applyResume(appCfg *apppkg.Config, store *history.Store, direction string) error {
	switch direction {
	case apppkg.ResumeNext, apppkg.ResumePrev:
	default:
		return fmt.Errorf("--resume must be %q or %q, got %q", apppkg.ResumeNext, apppkg.ResumePrev, direction)
	}
	if store == nil {
		return nil
	}
	entry, ok, err := store.Load()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	appCfg.InitialQuery = entry.Query
	appCfg.Resume = direction
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
