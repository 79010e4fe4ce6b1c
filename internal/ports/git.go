package ports

import (
	"github.com/jmcdonald/gitsigns/internal/gitver"
	"github.com/jmcdonald/gitsigns/internal/parse"
)

// GitClient is the fixed catalog of git operations the signs core needs.
// Production code uses the execgit adapter; tests use mocks.MockGitClient.
//
// Mutating operations (StageLines, AddIntentToAdd, UpdateIndex) treat a
// nonzero exit or any stderr output as a hard failure carrying the
// concatenated stderr text. Read-only operations log stderr as diagnostics
// and fail only when the process cannot be spawned or its output cannot be
// parsed.
type GitClient interface {
	// Version runs `git --version` and returns the parsed version triple.
	Version() (gitver.Version, error)

	// RepoInfo resolves the working tree root, the absolute metadata
	// directory and the abbreviated head name for the repository
	// containing cwd. Requires the version gate to be set (the git-dir
	// flag is version-gated).
	RepoInfo(cwd string) (*parse.RepoInfo, error)

	// FileInfo returns index information for a single path: relative
	// path, blob object id, mode bits and a conflict flag.
	FileInfo(path string) (*parse.FileStatus, error)

	// StagedContent returns the content lines of the blob at the given
	// index stage for path (stage 0 is the normal index slot).
	StagedContent(stage int, path string) ([]string, error)

	// WriteStagedContent writes the blob at the given index stage for
	// path to outPath, one newline per line.
	WriteStagedContent(stage int, path, outPath string) error

	// BlameLine blames a single line of path against the supplied buffer
	// contents (fed to git on stdin). Returns nil when git produced no
	// blame output for the line.
	BlameLine(path string, lnum int, contents []string) (*parse.BlameRecord, error)

	// Diff compares the supplied buffer contents against the blob at ref
	// for path and returns the zero-context hunks.
	Diff(path, ref string, contents []string) ([]parse.Hunk, error)

	// StageLines applies the given patch lines to the index.
	StageLines(patch []string) error

	// AddIntentToAdd records an intent-to-add entry for an untracked file.
	AddIntentToAdd(path string) error

	// UpdateIndex registers a cache entry for path with the given mode
	// bits and object id.
	UpdateIndex(mode, object, path string) error

	// Command runs an arbitrary git invocation and returns its stdout
	// lines.
	Command(args ...string) ([]string, error)
}
