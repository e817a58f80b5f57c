package testutil

import (
	"testing"

	"github.com/spf13/afero"
)

// NewDocumentFs returns an in-memory filesystem holding files, keyed by path.
func NewDocumentFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", name, err)
		}
	}
	return fs
}

// ReadFile returns the content of name, failing the test if it cannot be read.
func ReadFile(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, name)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}
