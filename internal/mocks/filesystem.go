package mocks

import (
	"io/fs"
	"os"
	"time"

	"github.com/jmcdonald/gitsigns/internal/ports"
)

// MockFileSystem implements ports.FileSystem with an in-memory file map.
type MockFileSystem struct {
	// Files maps path to content. Presence in the map means the path
	// exists.
	Files map[string][]byte

	// Dirs tracks paths that exist as directories.
	Dirs map[string]bool

	// WriteErr, when set, is returned from every WriteFile call.
	WriteErr error

	// RemoveErr, when set, is returned from every Remove call.
	RemoveErr error

	// Removed records every path passed to Remove, in order.
	Removed []string
}

// NewMockFileSystem creates an empty in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files: make(map[string][]byte),
		Dirs:  make(map[string]bool),
	}
}

// Stat reports whether the path exists in the file or directory maps.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if _, ok := m.Files[name]; ok {
		return mockFileInfo{name: name, size: int64(len(m.Files[name]))}, nil
	}
	if m.Dirs[name] {
		return mockFileInfo{name: name, dir: true}, nil
	}
	return nil, os.ErrNotExist
}

// WriteFile stores data under name.
func (m *MockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Files[name] = data
	return nil
}

// Remove deletes name from the file map and records the call.
func (m *MockFileSystem) Remove(name string) error {
	m.Removed = append(m.Removed, name)
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	if _, ok := m.Files[name]; !ok {
		return os.ErrNotExist
	}
	delete(m.Files, name)
	return nil
}

// TempDir returns a fixed fake temp directory.
func (m *MockFileSystem) TempDir() string {
	return "/tmp"
}

// mockFileInfo is a minimal os.FileInfo for Stat results.
type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi mockFileInfo) Name() string       { return fi.name }
func (fi mockFileInfo) Size() int64        { return fi.size }
func (fi mockFileInfo) Mode() fs.FileMode  { return 0o644 }
func (fi mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi mockFileInfo) IsDir() bool        { return fi.dir }
func (fi mockFileInfo) Sys() any           { return nil }

// Compile-time check that MockFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*MockFileSystem)(nil)
