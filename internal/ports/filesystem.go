package ports

import "os"

// FileSystem abstracts the filesystem operations the git adapters need:
// writing and removing temporary comparison files, writing staged blob
// content, and probing repository marker paths. Production code uses the
// osfs adapter; tests use mocks.MockFileSystem.
type FileSystem interface {
	// Stat returns file info for the named file.
	Stat(name string) (os.FileInfo, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// Remove removes the named file or empty directory.
	Remove(name string) error

	// TempDir returns the directory to use for temporary files.
	TempDir() string
}
