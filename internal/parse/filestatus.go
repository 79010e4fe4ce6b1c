package parse

import (
	"strconv"
	"strings"
)

// FileStatus is the index information for one path, derived from a single
// `ls-files --stage --others` output line.
type FileStatus struct {
	// Relpath is the path relative to the working tree root.
	Relpath string

	// Object is the blob object id. Empty for untracked or conflicted
	// entries.
	Object string

	// Mode is the file-mode bits as printed by git (e.g. "100644").
	// Empty for untracked or conflicted entries.
	Mode string

	// HasConflict is set when the entry sits in a merge-conflict stage.
	HasConflict bool
}

// FileStatusLine parses one status line. Tracked entries carry a
// tab-separated metadata column (`<mode> <object> <stage>\t<relpath>`);
// a stage above 1 marks a merge conflict and suppresses mode/object capture.
// A line without a tab is a bare untracked relative path.
func FileStatusLine(line string) (*FileStatus, error) {
	meta, relpath, tracked := strings.Cut(line, "\t")
	if !tracked {
		return &FileStatus{Relpath: line}, nil
	}

	fields := strings.Fields(meta)
	if len(fields) < 3 {
		return nil, &Error{Proto: "file-status", Input: line}
	}
	stage, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, &Error{Proto: "file-status", Input: line}
	}

	if stage > 1 {
		return &FileStatus{Relpath: relpath, HasConflict: true}, nil
	}
	return &FileStatus{
		Relpath: relpath,
		Mode:    fields[0],
		Object:  fields[1],
	}, nil
}
