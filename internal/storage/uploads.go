package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// UploadDir stores uploaded documents on disk, keyed by sanitized filename.
type UploadDir struct {
	baseDir string
}

// NewUploadDir creates the upload directory if needed.
func NewUploadDir(baseDir string) (*UploadDir, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadDir{baseDir: baseDir}, nil
}

// Save writes the uploaded content under a sanitized version of name and
// returns the stored name and full path.
func (u *UploadDir) Save(name string, r io.Reader) (string, string, error) {
	stored := SafeFilename(name)
	if stored == "" {
		return "", "", fmt.Errorf("invalid filename %q", name)
	}
	path := filepath.Join(u.baseDir, stored)

	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return stored, path, nil
}

// SafeFilename strips path components and replaces anything outside a
// conservative character set, keeping the extension intact.
func SafeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	safe := strings.Trim(b.String(), "._")
	if len(safe) > 100 {
		safe = safe[len(safe)-100:]
	}
	return safe
}
