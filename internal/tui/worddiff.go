package tui

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// StyleHunkLines colors hunk preview lines for the popup. Adjacent
// removed/added pairs additionally get intraline emphasis on the spans that
// actually changed, computed with go-diff.
func StyleHunkLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "@@"):
			out = append(out, headerStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			// A removal directly followed by an addition is a changed
			// line pair; emphasize the differing spans in both.
			if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "+") {
				del, add := styleLinePair(line[1:], lines[i+1][1:])
				out = append(out, removedStyle.Render("-")+del, addedStyle.Render("+")+add)
				i++
				continue
			}
			out = append(out, removedStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			out = append(out, addedStyle.Render(line))
		default:
			out = append(out, normalStyle.Render(line))
		}
	}
	return out
}

// styleLinePair renders the old and new text of one changed line with
// character-level emphasis on the differing spans.
func styleLinePair(oldText, newText string) (string, string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var oldB, newB strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldB.WriteString(removedStyle.Render(d.Text))
			newB.WriteString(addedStyle.Render(d.Text))
		case diffmatchpatch.DiffDelete:
			oldB.WriteString(emphDelStyle.Render(d.Text))
		case diffmatchpatch.DiffInsert:
			newB.WriteString(emphAddStyle.Render(d.Text))
		}
	}
	return oldB.String(), newB.String()
}
