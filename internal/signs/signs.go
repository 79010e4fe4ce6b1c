// Package signs turns parsed diff hunks into per-line sign placements and
// summary counts, the shape a gutter renderer consumes.
package signs

import "github.com/jmcdonald/gitsigns/internal/parse"

// Type classifies a sign.
type Type int

const (
	Add Type = iota
	Change
	Delete
	ChangeDelete
	TopDelete
)

// String returns the sign name used by renderers and the CLI.
func (t Type) String() string {
	switch t {
	case Add:
		return "add"
	case Change:
		return "change"
	case Delete:
		return "delete"
	case ChangeDelete:
		return "changedelete"
	case TopDelete:
		return "topdelete"
	default:
		return "unknown"
	}
}

// Sign marks one line of the new side of a diff.
type Sign struct {
	Type Type
	Lnum int
	// Count carries the number of removed lines a delete sign stands for.
	Count int
}

// Summary totals the change volume across a hunk list.
type Summary struct {
	Added   int
	Changed int
	Removed int
}

// FromHunks computes the sign placements for a list of hunks. Pure-add hunks
// mark every new line; pure-delete hunks collapse to a single delete sign on
// the surviving line (a top-delete when the removal was at line zero); mixed
// hunks mark the overlapping span as changed, any surplus new lines as
// added, and flag the last changed line when old lines outnumber new ones.
func FromHunks(hunks []parse.Hunk) []Sign {
	var out []Sign
	for _, h := range hunks {
		out = append(out, fromHunk(h)...)
	}
	return out
}

func fromHunk(h parse.Hunk) []Sign {
	switch {
	case h.NewCount == 0:
		lnum := h.NewStart
		typ := Delete
		if lnum == 0 {
			lnum = 1
			typ = TopDelete
		}
		return []Sign{{Type: typ, Lnum: lnum, Count: h.OldCount}}

	case h.OldCount == 0:
		signs := make([]Sign, 0, h.NewCount)
		for i := 0; i < h.NewCount; i++ {
			signs = append(signs, Sign{Type: Add, Lnum: h.NewStart + i})
		}
		return signs

	default:
		var signs []Sign
		overlap := h.OldCount
		if h.NewCount < overlap {
			overlap = h.NewCount
		}
		for i := 0; i < overlap; i++ {
			typ := Change
			if i == overlap-1 && h.OldCount > h.NewCount {
				typ = ChangeDelete
			}
			signs = append(signs, Sign{Type: typ, Lnum: h.NewStart + i})
		}
		for i := overlap; i < h.NewCount; i++ {
			signs = append(signs, Sign{Type: Add, Lnum: h.NewStart + i})
		}
		return signs
	}
}

// Summarize totals added, changed and removed lines across hunks.
func Summarize(hunks []parse.Hunk) Summary {
	var s Summary
	for _, h := range hunks {
		added, removed := h.Added(), h.Removed()
		overlap := added
		if removed < overlap {
			overlap = removed
		}
		s.Changed += overlap
		s.Added += added - overlap
		s.Removed += removed - overlap
	}
	return s
}

// HunkAt returns the hunk whose new-side span covers lnum, or nil. A
// pure-delete hunk covers the single line it collapsed onto.
func HunkAt(hunks []parse.Hunk, lnum int) *parse.Hunk {
	for i := range hunks {
		h := &hunks[i]
		start := h.NewStart
		end := h.NewStart + h.NewCount - 1
		if h.NewCount == 0 {
			start = h.NewStart
			end = h.NewStart
		}
		if lnum >= start && lnum <= end {
			return h
		}
	}
	return nil
}
