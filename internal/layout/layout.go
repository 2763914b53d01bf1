// Package layout persists the on-screen positions of the viewer's
// draggable buttons between runs. Purely cosmetic: a missing or broken
// layout file silently falls back to the built-in placement.
package layout

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Position is one stored widget location in window coordinates.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Store maps widget identifiers to their saved positions and remembers
// where to write them back.
type Store struct {
	path      string
	positions map[string]Position
}

// DefaultPath returns the layout file under the user's config directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "shineyview", "layout.yaml")
}

// Open reads the layout file at path. A missing file yields an empty
// usable store; a malformed file does too, since stored positions are
// never worth failing startup over.
func Open(path string) *Store {
	s := &Store{path: path, positions: map[string]Position{}}
	if path == "" {
		return s
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var positions map[string]Position
	if err := yaml.Unmarshal(data, &positions); err != nil {
		return s
	}
	if positions != nil {
		s.positions = positions
	}
	return s
}

// Get returns the saved position for id.
func (s *Store) Get(id string) (Position, bool) {
	p, ok := s.positions[id]
	return p, ok
}

// Set records the position for id in memory. Call Save to persist.
func (s *Store) Set(id string, pt image.Point) {
	s.positions[id] = Position{X: pt.X, Y: pt.Y}
}

// Save writes all positions to the store's file, creating the directory
// as needed.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	data, err := yaml.Marshal(s.positions)
	if err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating layout directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing layout: %w", err)
	}
	return nil
}
