package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewWriter opens the sink target for the given path. An empty path selects
// standard error; a file target is created along with its parent directory
// and appended to across sessions.
func NewWriter(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stderr}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o711); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file, nil
}
