package parse

import "path/filepath"

// DetachedPlaceholder is what `rev-parse --abbrev-ref HEAD` prints when the
// symbolic ref cannot be resolved (detached head, mid-rebase).
const DetachedPlaceholder = "HEAD"

// RebaseSentinel is reported as the abbreviated head while a rebase is in
// progress.
const RebaseSentinel = "(rebasing)"

// RepoInfo describes one repository: the working tree root, the absolute
// metadata directory, and the abbreviated current head.
type RepoInfo struct {
	Toplevel   string
	GitDir     string
	AbbrevHead string
}

// RepoInfoOptions adjusts how the three rev-parse output lines are
// interpreted.
type RepoInfoOptions struct {
	// BaseDir resolves a relative git-dir line (older git prints the
	// metadata directory relative to the working directory the command
	// ran in).
	BaseDir string

	// Exists probes a path inside the metadata directory, used to detect
	// rebase-state markers. Nil treats every marker as absent.
	Exists func(path string) bool

	// Debug passes the raw detached-head placeholder through instead of
	// blanking it.
	Debug bool
}

// ParseRepoInfo reduces the three fixed rev-parse output lines — toplevel,
// metadata directory, abbreviated head — into a RepoInfo. The metadata
// directory is made absolute when git printed a relative path. A raw
// detached-head placeholder becomes the rebase sentinel when a rebase marker
// exists under the metadata directory, and is otherwise blanked unless
// running in debug mode.
func ParseRepoInfo(lines []string, opts RepoInfoOptions) (*RepoInfo, error) {
	if len(lines) < 3 {
		return nil, &Error{Proto: "repo-info", Input: joinForError(lines)}
	}

	gitDir := lines[1]
	if !filepath.IsAbs(gitDir) && opts.BaseDir != "" {
		gitDir = filepath.Join(opts.BaseDir, gitDir)
	}

	return &RepoInfo{
		Toplevel:   lines[0],
		GitDir:     gitDir,
		AbbrevHead: abbrevHead(lines[2], gitDir, opts),
	}, nil
}

func abbrevHead(raw, gitDir string, opts RepoInfoOptions) string {
	if raw != DetachedPlaceholder {
		return raw
	}
	if opts.Exists != nil {
		for _, marker := range []string{"rebase-merge", "rebase-apply"} {
			if opts.Exists(filepath.Join(gitDir, marker)) {
				return RebaseSentinel
			}
		}
	}
	if opts.Debug {
		return raw
	}
	return ""
}

func joinForError(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
