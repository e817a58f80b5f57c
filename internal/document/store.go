// Package document reads and writes the text documents ortofix corrects.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// ErrInvalidEncoding is returned when a document is not valid UTF-8.
var ErrInvalidEncoding = errors.New("document is not valid UTF-8")

// Store provides document access over an afero filesystem
type Store struct {
	fs afero.Fs
}

// NewStore creates a store backed by fs
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// List returns the paths of regular files in dir whose names end in one of
// exts, sorted. Subdirectories are only descended into when recursive is set.
func (s *Store) List(dir string, exts []string, recursive bool) ([]string, error) {
	var paths []string

	if !recursive {
		entries, err := afero.ReadDir(s.fs, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !hasExtension(entry.Name(), exts) {
				continue
			}
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
		sort.Strings(paths)
		return paths, nil
	}

	err := afero.Walk(s.fs, dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !hasExtension(info.Name(), exts) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func hasExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Read returns the full content of path as text
func (s *Store) Read(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}

// Write replaces the content of path with text. The new content is written
// to a temporary file in the same directory and renamed over path, so the
// document holds either the old or the new text, never a mix.
func (s *Store) Write(path, text string) error {
	perm := os.FileMode(0o644)
	if info, err := s.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(s.fs, filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}
	if err := s.fs.Chmod(tmpPath, perm); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err := s.fs.Rename(tmpPath, path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
