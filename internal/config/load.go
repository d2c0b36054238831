package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ripxorip/aerojump.nvim/internal/state"
)

const maxTabWidth = 16

// Load reads configuration from path, falling back to DefaultConfigPath
// when path is empty. A missing file is not an error. AEROJUMP_* variables
// override file values (e.g. AEROJUMP_CONTEXT_BEFORE).
func Load(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("AEROJUMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("mode", cfg.Mode)
	v.SetDefault("input", cfg.Input)
	v.SetDefault("context.before", cfg.Context.Before)
	v.SetDefault("context.after", cfg.Context.After)
	v.SetDefault("tab_width", cfg.TabWidth)
	v.SetDefault("resume.enabled", cfg.Resume.Enabled)
	v.SetDefault("resume.path", cfg.Resume.Path)

	fileRead := true
	if err := v.ReadInConfig(); err != nil {
		fileRead = false
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.Keymaps = DefaultKeymaps()
	if fileRead {
		overrides, err := readKeymaps(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Keymaps = mergeKeymaps(cfg.Keymaps, overrides)
	}
	cfg.Resume.Path = os.ExpandEnv(cfg.Resume.Path)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeKeymaps overlays user bindings on the defaults. A binding to "none"
// removes the key.
func mergeKeymaps(base, overrides map[string]string) map[string]string {
	for key, command := range overrides {
		if strings.EqualFold(command, "none") {
			deleteKeyFold(base, key)
			continue
		}
		deleteKeyFold(base, key)
		base[key] = command
	}
	return base
}

// deleteKeyFold drops key. Named keys such as <C-h> match ignoring case;
// a single-character key only matches itself, so "J" and "j" stay distinct.
func deleteKeyFold(m map[string]string, key string) {
	for existing := range m {
		if existing == key || (isNamedKey(existing) && isNamedKey(key) && strings.EqualFold(existing, key)) {
			delete(m, existing)
		}
	}
}

func isNamedKey(key string) bool {
	return strings.HasPrefix(key, "<") && strings.HasSuffix(key, ">") && len(key) > 2
}

// readKeymaps reads the keymaps section straight from the yaml file. viper
// lowercases map keys, which would turn a "J" binding into "j".
func readKeymaps(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var raw struct {
		Keymaps map[string]string `yaml:"keymaps"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode keymaps in %s: %w", path, err)
	}
	return raw.Keymaps, nil
}

// Validate checks a configuration for values the front end cannot use.
func Validate(cfg Config) error {
	if _, err := state.ParseMode(cfg.Mode); err != nil {
		return fmt.Errorf("%w: mode: %w", ErrInvalidConfig, err)
	}
	switch cfg.Input {
	case InputKeyboard, InputCursor:
	default:
		return fmt.Errorf("%w: input must be %q or %q, got %q", ErrInvalidConfig, InputKeyboard, InputCursor, cfg.Input)
	}
	if cfg.Context.Before < 0 || cfg.Context.After < 0 {
		return fmt.Errorf("%w: context.before and context.after must not be negative", ErrInvalidConfig)
	}
	if cfg.TabWidth < 1 || cfg.TabWidth > maxTabWidth {
		return fmt.Errorf("%w: tab_width must be between 1 and %d, got %d", ErrInvalidConfig, maxTabWidth, cfg.TabWidth)
	}
	if cfg.Resume.Enabled && cfg.Resume.Path == "" {
		return fmt.Errorf("%w: resume.path is required when resume is enabled", ErrInvalidConfig)
	}
	return nil
}

// Dump renders cfg as yaml.
func Dump(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteDefault writes the default config to path (DefaultConfigPath when
// empty) and returns the path written.
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", err
		}
		path = defaultPath
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config already exists at %s", path)
		}
	}

	data, err := Dump(DefaultConfig())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
