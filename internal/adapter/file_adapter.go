package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FileAdapter abstracts the file system operations ldform needs so the
// workflow can be tested without touching the disk.
type FileAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path string, content []byte, perm os.FileMode) error

	// Glob expands a doublestar pattern ("docs/**/*.yaml") into sorted file paths.
	Glob(pattern string) ([]string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path string) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) string
}

// LocalFileAdapter is the os backed FileAdapter.
type LocalFileAdapter struct{}

// NewLocalFileAdapter constructs a LocalFileAdapter.
func NewLocalFileAdapter() *LocalFileAdapter {
	return &LocalFileAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalFileAdapter) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes content to path. Missing parent directories are created.
func (a *LocalFileAdapter) WriteFile(path string, content []byte, perm os.FileMode) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	return os.WriteFile(path, content, perm)
}

// Glob returns the regular files matching pattern. Directories are skipped.
func (a *LocalFileAdapter) Glob(pattern string) ([]string, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	sort.Strings(matches)

	return matches, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFileAdapter) FileInfo(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// JoinPath joins path elements using the OS separator.
func (a *LocalFileAdapter) JoinPath(elem ...string) string {
	return filepath.Join(elem...)
}
