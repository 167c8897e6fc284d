package settings

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

const fileName = "settings.toml"

// Store loads and saves settings.
type Store interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

// FileStore keeps settings in a TOML file.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates a store for the settings file in dir.
// If dir is empty, defaults to $XDG_CONFIG_HOME/multicolumn (or
// ~/.config/multicolumn).
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	return &FileStore{path: filepath.Join(dir, fileName)}, nil
}

// DefaultDir returns the settings directory following the XDG convention.
func DefaultDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "multicolumn"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "multicolumn"), nil
}

// Path returns the settings file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the settings file. A missing file yields [Defaults]; keys absent
// from the file keep their default values.
func (s *FileStore) Load(ctx context.Context) (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := Defaults()
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if _, err := toml.Decode(string(data), &out); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if err := out.Validate(); err != nil {
		return Settings{}, err
	}
	return out, nil
}

// Save validates and writes the settings, replacing the file atomically.
func (s *FileStore) Save(ctx context.Context, st Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(st); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), fileName+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

// Reset removes the settings file so the defaults apply again.
func (s *FileStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove settings: %w", err)
	}
	return nil
}

// MemoryStore keeps settings in memory. Useful for tests and the HTTP API.
type MemoryStore struct {
	mu sync.RWMutex
	s  Settings
}

// NewMemoryStore creates a store holding s.
func NewMemoryStore(s Settings) *MemoryStore {
	return &MemoryStore{s: s}
}

func (m *MemoryStore) Load(ctx context.Context) (Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s, nil
}

func (m *MemoryStore) Save(ctx context.Context, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
