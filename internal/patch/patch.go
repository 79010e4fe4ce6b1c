// Package patch builds the unified patch text that `git apply --cached
// --unidiff-zero -` consumes, from a single parsed hunk.
package patch

import (
	"fmt"
	"strings"

	"github.com/jmcdonald/gitsigns/internal/parse"
)

// ForHunk renders a minimal zero-context patch that stages exactly one hunk
// of relpath. Mode is the file-mode bits from the index entry ("100644");
// it defaults to regular-file bits when empty.
func ForHunk(relpath, mode string, h parse.Hunk) []string {
	if mode == "" {
		mode = "100644"
	}
	lines := []string{
		fmt.Sprintf("diff --git a/%s b/%s", relpath, relpath),
		"index 000000..000000 " + mode,
		"--- a/" + relpath,
		"+++ b/" + relpath,
		h.Header(),
	}
	return append(lines, h.Lines...)
}

// Invert reverses a hunk so applying it undoes the original: old and new
// sides swap, and every content line flips its marker. Removals are emitted
// before additions, the order a zero-context unified hunk requires.
func Invert(h parse.Hunk) parse.Hunk {
	inv := parse.Hunk{
		OldStart: h.NewStart,
		OldCount: h.NewCount,
		NewStart: h.OldStart,
		NewCount: h.OldCount,
	}

	var removed, added []string
	for _, l := range h.Lines {
		switch {
		case strings.HasPrefix(l, "+"):
			removed = append(removed, "-"+l[1:])
		case strings.HasPrefix(l, "-"):
			added = append(added, "+"+l[1:])
		default:
			// Context lines pass through unchanged; with --unified=0
			// there normally are none.
			removed = append(removed, l)
		}
	}
	inv.Lines = append(removed, added...)
	return inv
}
