// Package mru persists the most-recently-used file list the viewer host
// shows on its open menu. The list lives in a small JSON file under the
// user's config directory.
package mru

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultLimit caps the list when no limit is configured.
const DefaultLimit = 10

// List manages the recent-files list backed by a JSON file.
type List struct {
	path  string
	limit int
}

// NewList creates a list stored at path, keeping at most limit entries.
func NewList(path string, limit int) *List {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &List{path: path, limit: limit}
}

// Load reads the current list. A missing file is an empty list.
func (l *List) Load() ([]string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading recent files list: %w", err)
	}
	var files []string
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("parsing recent files list: %w", err)
	}
	return files, nil
}

// Touch moves path to the front of the list, trimming to the limit, and
// writes the list back.
func (l *List) Touch(path string) error {
	files, err := l.Load()
	if err != nil {
		return err
	}

	updated := []string{path}
	for _, f := range files {
		if f != path {
			updated = append(updated, f)
		}
	}
	if len(updated) > l.limit {
		updated = updated[:l.limit]
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := json.MarshalIndent(updated, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding recent files list: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("writing recent files list: %w", err)
	}
	return nil
}
