package config

import (
	"errors"
	"os"
	"path/filepath"
)

const appName = "aerojump"

// Input sources for the initial query.
const (
	InputKeyboard = "kbd"
	InputCursor   = "cursor"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the effective configuration of the aerojump front end.
type Config struct {
	Mode     string            `mapstructure:"mode" yaml:"mode"`
	Input    string            `mapstructure:"input" yaml:"input"`
	Context  ContextConfig     `mapstructure:"context" yaml:"context"`
	TabWidth int               `mapstructure:"tab_width" yaml:"tab_width"`
	Keymaps  map[string]string `mapstructure:"keymaps" yaml:"keymaps"`
	Resume   ResumeConfig      `mapstructure:"resume" yaml:"resume"`
}

// ContextConfig sets how many rows surround a match in context mode.
type ContextConfig struct {
	Before int `mapstructure:"before" yaml:"before"`
	After  int `mapstructure:"after" yaml:"after"`
}

// ResumeConfig controls the last-query store.
type ResumeConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// DefaultKeymaps returns the stock key bindings.
func DefaultKeymaps() map[string]string {
	return map[string]string{
		"<C-h>":   "match_prev",
		"<Left>":  "match_prev",
		"<C-j>":   "line_down",
		"<Down>":  "line_down",
		"<C-k>":   "line_up",
		"<Up>":    "line_up",
		"<C-l>":   "match_next",
		"<Right>": "match_next",
		"<C-q>":   "exit",
		"<Esc>":   "select",
		"<CR>":    "select",
		"<Space>": "select",
	}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Mode:     "default",
		Input:    InputKeyboard,
		Context:  ContextConfig{Before: 1, After: 1},
		TabWidth: 4,
		Keymaps:  DefaultKeymaps(),
		Resume: ResumeConfig{
			Enabled: true,
			Path:    DefaultHistoryPath(),
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/aerojump/config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.yaml"), nil
}

// DefaultHistoryPath returns the location of the resume store, preferring
// $XDG_STATE_HOME. It is empty when no home directory can be found.
func DefaultHistoryPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName, "history.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", appName, "history.yaml")
}
