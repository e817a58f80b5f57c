package document

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestStoreList(t *testing.T) {
	t.Parallel()

	fs := newTestFs(t, map[string]string{
		"blog/es/b.mdx":         "b",
		"blog/es/a.md":          "a",
		"blog/es/notes.txt":     "n",
		"blog/es/readme.md.bak": "r",
		"blog/es/sub/c.md":      "c",
	})
	exts := []string{".mdx", ".md"}

	tests := []struct {
		name      string
		recursive bool
		want      []string
	}{
		{
			name: "top level only",
			want: []string{
				filepath.Join("blog/es", "a.md"),
				filepath.Join("blog/es", "b.mdx"),
			},
		},
		{
			name:      "recursive",
			recursive: true,
			want: []string{
				filepath.Join("blog/es", "a.md"),
				filepath.Join("blog/es", "b.mdx"),
				filepath.Join("blog/es", "sub", "c.md"),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			paths, err := NewStore(fs).List("blog/es", exts, tt.recursive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, paths)
		})
	}
}

func TestStoreListMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := NewStore(afero.NewMemMapFs()).List("missing", []string{".md"}, false)
	assert.Error(t, err)
}

func TestStoreRead(t *testing.T) {
	t.Parallel()

	fs := newTestFs(t, map[string]string{
		"doc.md": "el código",
		"bad.md": string([]byte{0x63, 0xf3, 0x64}),
	})
	store := NewStore(fs)

	text, err := store.Read("doc.md")
	require.NoError(t, err)
	assert.Equal(t, "el código", text)

	_, err = store.Read("bad.md")
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = store.Read("missing.md")
	assert.Error(t, err)
}

func TestStoreWrite(t *testing.T) {
	t.Parallel()

	fs := newTestFs(t, map[string]string{"docs/doc.md": "el codigo"})
	require.NoError(t, fs.Chmod("docs/doc.md", 0o600))
	store := NewStore(fs)

	require.NoError(t, store.Write("docs/doc.md", "el código"))

	data, err := afero.ReadFile(fs, "docs/doc.md")
	require.NoError(t, err)
	assert.Equal(t, "el código", string(data))

	info, err := fs.Stat("docs/doc.md")
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())

	entries, err := afero.ReadDir(fs, "docs")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should not be left behind")
}

func TestStoreWriteFailureKeepsOriginal(t *testing.T) {
	t.Parallel()

	base := newTestFs(t, map[string]string{"doc.md": "el codigo"})
	store := NewStore(afero.NewReadOnlyFs(base))

	err := store.Write("doc.md", "el código")
	require.Error(t, err)

	data, err := afero.ReadFile(base, "doc.md")
	require.NoError(t, err)
	assert.Equal(t, "el codigo", string(data))
}
