// Package project locates the root of the site whose documents are corrected.
package project

import (
	"path/filepath"

	"github.com/hdrones8/ortofix/internal/constants"
	"github.com/spf13/afero"
)

var markers = []string{constants.ConfigFilename, "package.json", ".git"}

// FindRoot returns the nearest directory at or above start that holds a
// project marker. When none does, start itself is returned.
func FindRoot(fs afero.Fs, start string) string {
	if root, found := findProjectMarker(fs, start); found {
		return root
	}
	return filepath.Clean(start)
}

// findProjectMarker searches for project root markers starting from the given directory
func findProjectMarker(fs afero.Fs, startDir string) (string, bool) {
	currentDir := filepath.Clean(startDir)

	for {
		if hasProjectMarker(fs, currentDir) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)

		// Stop if we've reached the filesystem root
		if parentDir == currentDir {
			break
		}

		currentDir = parentDir
	}

	return "", false
}

func hasProjectMarker(fs afero.Fs, dir string) bool {
	for _, marker := range markers {
		if exists, err := afero.Exists(fs, filepath.Join(dir, marker)); err == nil && exists {
			return true
		}
	}
	return false
}

// Resolve joins a relative path onto root. Absolute paths are returned
// unchanged.
func Resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
