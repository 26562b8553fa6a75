// Package constants provides shared constants used throughout mdhelpers.
// This includes file permissions, defaults and limits that should be
// consistent between the library, the renderer and the CLI.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for rendered files (rw-r--r--)
	FilePermissions = 0644
)

// Default values for helper configuration
const (
	// DefaultProfileBaseURL is the profile host user links point to
	DefaultProfileBaseURL = "https://github.com/"

	// DefaultDataFormat is assumed for data files without a known extension
	DefaultDataFormat = "yaml"

	// StdinPath is the path argument that means "read from standard input"
	StdinPath = "-"
)

// Limit constants
const (
	// MaxDataFileSize is the largest data or ranking file the CLI will load (8 MiB)
	MaxDataFileSize = 8 << 20
)
