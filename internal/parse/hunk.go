package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Hunk is a contiguous change region from a unified diff: starting line and
// length for the old and new sides, plus the verbatim content lines that
// belong to it (with their leading +/-/space markers).
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []string
}

// Header reconstructs the unified-diff hunk header for h.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
}

// Added returns the number of added lines in h.
func (h Hunk) Added() int { return h.countPrefix("+") }

// Removed returns the number of removed lines in h.
func (h Hunk) Removed() int { return h.countPrefix("-") }

func (h Hunk) countPrefix(p string) int {
	n := 0
	for _, l := range h.Lines {
		if strings.HasPrefix(l, p) {
			n++
		}
	}
	return n
}

// hunkHeaderRe matches `@@ -old[,len] +new[,len] @@`; a missing length
// defaults to 1.
var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// hunkParserState tracks where the hunk reducer is in the line stream.
type hunkParserState int

const (
	awaitingHeader hunkParserState = iota
	inHunk
)

// Hunks reduces unified-diff output lines into hunks. A header line starts a
// new hunk; every following line is appended verbatim to the current hunk
// until the next header or end of input. Content lines arriving before the
// first header are discarded (diff output opens with file headers, not hunk
// content). A line that starts like a hunk header but has non-numeric fields
// is a hard parse failure.
func Hunks(lines []string) ([]Hunk, error) {
	var hunks []Hunk
	state := awaitingHeader

	for _, line := range lines {
		if strings.HasPrefix(line, "@@") {
			h, err := hunkHeader(line)
			if err != nil {
				return nil, err
			}
			hunks = append(hunks, h)
			state = inHunk
			continue
		}
		if state == awaitingHeader {
			continue
		}
		cur := &hunks[len(hunks)-1]
		cur.Lines = append(cur.Lines, line)
	}

	return hunks, nil
}

func hunkHeader(line string) (Hunk, error) {
	m := hunkHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return Hunk{}, &Error{Proto: "hunk", Input: line}
	}
	return Hunk{
		OldStart: mustCount(m[1]),
		OldCount: defaultCount(m[2]),
		NewStart: mustCount(m[3]),
		NewCount: defaultCount(m[4]),
	}, nil
}

// mustCount converts a \d+ capture; the regexp guarantees it is numeric.
func mustCount(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// defaultCount handles the optional length field, which defaults to 1 when
// the header omits it (`@@ -5 +5 @@`).
func defaultCount(s string) int {
	if s == "" {
		return 1
	}
	return mustCount(s)
}
