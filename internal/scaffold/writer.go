package scaffold

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// WriteError wraps a failed file write.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Writer replaces whole files. It never creates parent directories; callers
// make sure the target directory exists first.
type Writer struct {
	// Root is used only to shorten paths in log records.
	Root   string
	Logger *slog.Logger
}

// NewWriter returns a Writer that reports paths relative to root.
func NewWriter(root string, logger *slog.Logger) *Writer {
	return &Writer{Root: root, Logger: logger}
}

// WriteFile writes content to path, replacing any existing file. Replacing an
// existing file is logged but is not an error.
func (w *Writer) WriteFile(path, content string) error {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		w.logger().Info("overwriting file", "path", w.display(path))
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func (w *Writer) display(path string) string {
	if w.Root == "" {
		return path
	}
	rel, err := filepath.Rel(w.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func (w *Writer) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.Default()
	}
	return w.Logger
}
