package testutil

import (
	"testing"

	"github.com/hdrones8/ortofix/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestNewTestContextCapturesLogs(t *testing.T) {
	t.Parallel()

	ctx, getLogOutput := NewTestContext(t)
	logging.Get(ctx).Debug().Str("path", "a.md").Msg("checked")

	output := getLogOutput()
	assert.Contains(t, output, `"path":"a.md"`)
	assert.Contains(t, output, `"level":"debug"`)
}

func TestNewDocumentFs(t *testing.T) {
	t.Parallel()

	fs := NewDocumentFs(t, map[string]string{"es/a.md": "hola"})
	assert.Equal(t, "hola", ReadFile(t, fs, "es/a.md"))
}
