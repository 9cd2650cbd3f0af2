// Package prefs persists local user preferences across restarts.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Preferences holds locally persisted user preferences.
type Preferences struct {
	DarkMode bool `json:"darkMode"`
}

// Store loads and saves preferences at a fixed file path.
type Store struct {
	path string
}

// NewStore creates a preferences store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads preferences from disk. A missing file yields zero-value
// preferences without error; preferences are never assumed reset on restart.
func (s *Store) Load() (Preferences, error) {
	var p Preferences

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("failed to read preferences: %w", err)
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("failed to parse preferences: %w", err)
	}
	return p, nil
}

// Save writes preferences to disk, creating parent directories as needed.
func (s *Store) Save(p Preferences) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create preferences dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
