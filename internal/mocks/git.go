package mocks

import (
	"github.com/jmcdonald/gitsigns/internal/gitver"
	"github.com/jmcdonald/gitsigns/internal/parse"
	"github.com/jmcdonald/gitsigns/internal/ports"
)

// MockGitClient implements ports.GitClient for testing. Each field backs
// the operation of the same name; unset fields return zero values.
type MockGitClient struct {
	VersionResult gitver.Version
	VersionErr    error

	RepoInfoResult *parse.RepoInfo
	RepoInfoErr    error

	FileInfoResult *parse.FileStatus
	FileInfoErr    error

	StagedLines map[string][]string

	BlameResult *parse.BlameRecord
	BlameErr    error

	Hunks   []parse.Hunk
	DiffErr error

	StageLinesErr error
	AddErr        error
	UpdateErr     error

	CommandResult []string
	CommandErr    error

	// StagedPatches records every patch passed to StageLines.
	StagedPatches [][]string
	// Added records every path passed to AddIntentToAdd.
	Added []string
}

// NewMockGitClient creates an empty mock git client.
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{StagedLines: make(map[string][]string)}
}

func (m *MockGitClient) Version() (gitver.Version, error) {
	return m.VersionResult, m.VersionErr
}

func (m *MockGitClient) RepoInfo(cwd string) (*parse.RepoInfo, error) {
	return m.RepoInfoResult, m.RepoInfoErr
}

func (m *MockGitClient) FileInfo(path string) (*parse.FileStatus, error) {
	return m.FileInfoResult, m.FileInfoErr
}

func (m *MockGitClient) StagedContent(stage int, path string) ([]string, error) {
	return m.StagedLines[path], nil
}

func (m *MockGitClient) WriteStagedContent(stage int, path, outPath string) error {
	return nil
}

func (m *MockGitClient) BlameLine(path string, lnum int, contents []string) (*parse.BlameRecord, error) {
	return m.BlameResult, m.BlameErr
}

func (m *MockGitClient) Diff(path, ref string, contents []string) ([]parse.Hunk, error) {
	return m.Hunks, m.DiffErr
}

func (m *MockGitClient) StageLines(patch []string) error {
	m.StagedPatches = append(m.StagedPatches, patch)
	return m.StageLinesErr
}

func (m *MockGitClient) AddIntentToAdd(path string) error {
	m.Added = append(m.Added, path)
	return m.AddErr
}

func (m *MockGitClient) UpdateIndex(mode, object, path string) error {
	return m.UpdateErr
}

func (m *MockGitClient) Command(args ...string) ([]string, error) {
	return m.CommandResult, m.CommandErr
}

// Compile-time check that MockGitClient implements ports.GitClient.
var _ ports.GitClient = (*MockGitClient)(nil)
