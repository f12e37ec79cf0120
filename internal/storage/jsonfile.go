package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFile persists a single JSON document with atomic replacement: writes
// go to a temporary file in the same directory and are renamed over the
// target, so readers never observe a partial write.
type JSONFile struct {
	path string
}

// NewJSONFile binds a store to the given path and creates the parent
// directory if needed.
func NewJSONFile(path string) (*JSONFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &JSONFile{path: path}, nil
}

// Path returns the backing file path.
func (f *JSONFile) Path() string {
	return f.path
}

// Read unmarshals the document into v. A missing file is not an error; v is
// left untouched and false is returned.
func (f *JSONFile) Read(v interface{}) (bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", f.path, err)
	}
	return true, nil
}

// Write marshals v and atomically replaces the document.
func (f *JSONFile) Write(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}
