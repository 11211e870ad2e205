// Package storage persists workspaces as JSON files for the demo host.
// The bytes are opaque to the core: the bridge validates whatever comes
// back before adoption, so a corrupt file degrades to a fresh workspace.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"prism/internal/workspace"
)

const (
	// DirEnv is the env var override for the state directory (for testing).
	DirEnv = "PRISM_STATE_DIR"
	// DefaultBase is the default base under the user's home.
	DefaultBase = ".prism/workspaces"
)

// Store reads and writes named workspace files.
// Layout: ~/.prism/workspaces/<name>.json
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at the user's home + DefaultBase, or at
// the path in PRISM_STATE_DIR if set.
func NewStore() (*Store, error) {
	base := os.Getenv(DirEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, DefaultBase)
	}
	return &Store{baseDir: base}, nil
}

// NewStoreAt creates a store rooted at an explicit directory.
func NewStoreAt(dir string) *Store {
	return &Store{baseDir: dir}
}

// Path returns the file path for a workspace by name.
func (s *Store) Path(name string) string {
	// Normalize: lowercase, replace spaces with hyphens
	normalized := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return filepath.Join(s.baseDir, normalized+".json")
}

// Load reads the persisted bytes for a workspace. A missing file is not an
// error: it returns nil bytes, meaning "no persisted state".
func (s *Store) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load workspace %q: %w", name, err)
	}
	return data, nil
}

// Save writes the workspace, creating the state directory if needed. The
// write goes through a temp file and rename so a crash never leaves a
// half-written state file.
func (s *Store) Save(name string, w *workspace.Workspace) error {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("save workspace %q: %w", name, err)
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("save workspace %q: %w", name, err)
	}
	path := s.Path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("save workspace %q: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save workspace %q: %w", name, err)
	}
	return nil
}

// Delete removes a persisted workspace. Missing files are fine.
func (s *Store) Delete(name string) error {
	err := os.Remove(s.Path(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete workspace %q: %w", name, err)
	}
	return nil
}
