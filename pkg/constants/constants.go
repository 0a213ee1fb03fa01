// Package constants provides shared constants used throughout the roster codebase.
// This includes file names, permissions, and schema sizes that should be
// consistent across the application.
package constants

// Storage constants
const (
	// DefaultStoreFile is the storage file used when none is configured
	DefaultStoreFile = "employees.csv"

	// StoreFormat names the on-disk encoding in errors and logs
	StoreFormat = "csv"

	// SchemaColumns is the number of fields on every stored row
	SchemaColumns = 8
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Config constants
const (
	// ConfigFileName is the config file name searched in $HOME and the working directory
	ConfigFileName = ".roster"

	// EnvPrefix prefixes environment variables read by the CLI (ROSTER_FILE, ...)
	EnvPrefix = "ROSTER"
)

// Seed constants
const (
	// DefaultSeedCount is how many fake employees the seed command writes by default
	DefaultSeedCount = 10

	// MaxSeedAttempts bounds PESEL regeneration when a fake key collides
	MaxSeedAttempts = 5
)

// Format constants
const (
	// BirthdayLayout is the expected lexical form of a birthday
	BirthdayLayout = "2006-01-02"
)
