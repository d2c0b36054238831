package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Entry is the last confirmed jump.
type Entry struct {
	Query   string    `yaml:"query"`
	Mode    string    `yaml:"mode"`
	Source  string    `yaml:"source,omitempty"`
	SavedAt time.Time `yaml:"saved_at"`
}

// Store persists the last query so a later run can resume it.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore returns a store backed by the yaml file at path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Load returns the stored entry. ok is false when nothing has been saved.
func (s *Store) Load() (entry Entry, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("read history: %w", err)
	}
	if err := yaml.Unmarshal(data, &entry); err != nil {
		return Entry{}, false, fmt.Errorf("decode history %s: %w", s.path, err)
	}
	if entry.Query == "" {
		return Entry{}, false, nil
	}
	return entry, true, nil
}

// Save records entry, stamping SavedAt. Empty queries are ignored.
func (s *Store) Save(entry Entry) error {
	if entry.Query == "" {
		return nil
	}
	entry.SavedAt = s.now().UTC()

	data, err := yaml.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".history-*.yaml")
	if err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
