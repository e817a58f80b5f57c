// Package constants contains file names and defaults shared across ortofix.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "ortofix"

	// ConfigFilename is the default configuration file name.
	ConfigFilename = "ortofix.yml"

	// LogFilename is the log file name inside the data directory.
	LogFilename = "ortofix.log"

	// JournalFilename is the journal database file name inside the data directory.
	JournalFilename = "journal.db"

	// DefaultDirectory is the document directory corrected when none is given.
	DefaultDirectory = "src/content/blog/es"
)

// DefaultExtensions are the document extensions corrected by default.
var DefaultExtensions = []string{".mdx", ".md"}
