// Package fileutil writes command output to files.
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileExists checks if a regular file exists at the given path
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteFileWithOverwrite writes data to a file, respecting the overwrite flag
// Returns true if the file was written, false if it was skipped
func WriteFileWithOverwrite(filePath string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		slog.Info("File already exists, skipping", "filename", filePath)
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return false, fmt.Errorf("failed to write file: %w", err)
	}

	return true, nil
}

// WriteRendered renders content through render and stores it at filePath.
// Nothing is written if render fails.
func WriteRendered(filePath string, overwrite bool, render func(io.Writer) error) (bool, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return false, err
	}

	written, err := WriteFileWithOverwrite(filePath, buf.Bytes(), 0o644, overwrite)
	if err != nil {
		return false, err
	}
	if written {
		slog.Info("Wrote output file", "filename", filePath, "bytes", buf.Len())
	}
	return written, nil
}
