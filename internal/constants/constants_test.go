package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilenames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ortofix", AppName)
	assert.Equal(t, "ortofix.yml", ConfigFilename)
	assert.Equal(t, "ortofix.log", LogFilename)
	assert.Equal(t, "journal.db", JournalFilename)
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{".mdx", ".md"}, DefaultExtensions)
}
