// Package parse turns line-oriented git output into typed records: unified
// diff hunks, blame porcelain records, repository metadata and index status
// lines. Every parser is a pure reducer over an ordered slice of text lines
// with no state shared across invocations.
package parse

import "strconv"

// Error is returned when a line does not match the protocol a parser
// expects. Proto identifies the protocol ("hunk", "blame", "repo-info",
// "file-status") and Input is the exact text that could not be interpreted,
// kept verbatim for diagnosis.
type Error struct {
	Proto string
	Input string
}

// Error returns a stable, human-readable message including the raw input.
func (e *Error) Error() string {
	return "parse: malformed " + e.Proto + " line: " + strconv.Quote(e.Input)
}
