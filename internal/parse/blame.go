package parse

import (
	"strconv"
	"strings"
)

// BlameRecord is one line's blame information from git's line-porcelain
// output. The header fields (SHA and line numbers) are positional and
// mandatory; the remaining fields are optional keyed porcelain values.
type BlameRecord struct {
	SHA       string
	AbbrevSHA string
	OrigLnum  int
	FinalLnum int

	Author        string
	AuthorMail    string
	AuthorTime    string
	AuthorTZ      string
	Committer     string
	CommitterMail string
	CommitterTime string
	CommitterTZ   string
	Summary       string
	Previous      string
	Filename      string
}

// blameSetters maps normalized porcelain keys (hyphens translated to
// underscores) to field setters. Unknown keys are dropped; a repeated key
// overwrites the earlier value.
var blameSetters = map[string]func(*BlameRecord, string){
	"author":         func(r *BlameRecord, v string) { r.Author = v },
	"author_mail":    func(r *BlameRecord, v string) { r.AuthorMail = v },
	"author_time":    func(r *BlameRecord, v string) { r.AuthorTime = v },
	"author_tz":      func(r *BlameRecord, v string) { r.AuthorTZ = v },
	"committer":      func(r *BlameRecord, v string) { r.Committer = v },
	"committer_mail": func(r *BlameRecord, v string) { r.CommitterMail = v },
	"committer_time": func(r *BlameRecord, v string) { r.CommitterTime = v },
	"committer_tz":   func(r *BlameRecord, v string) { r.CommitterTZ = v },
	"summary":        func(r *BlameRecord, v string) { r.Summary = v },
	"previous":       func(r *BlameRecord, v string) { r.Previous = v },
	"filename":       func(r *BlameRecord, v string) { r.Filename = v },
}

// Blame reduces line-porcelain output into a single record. The first line
// is the positional header (sha, original line, final line); each following
// line either starts with a tab (the blamed source text, which carries no
// metadata) or is a `key value...` pair merged into the record. The
// abbreviated SHA is the first 8 characters of the full SHA.
func Blame(lines []string) (*BlameRecord, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	rec, err := blameHeader(lines[0])
	if err != nil {
		return nil, err
	}

	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "\t") {
			// The blamed source text terminates the record.
			break
		}
		key, value, _ := strings.Cut(line, " ")
		key = strings.ReplaceAll(key, "-", "_")
		if set, ok := blameSetters[key]; ok {
			set(rec, value)
		}
	}

	return rec, nil
}

func blameHeader(line string) (*BlameRecord, error) {
	fields := strings.Split(line, " ")
	if len(fields) < 3 {
		return nil, &Error{Proto: "blame", Input: line}
	}
	orig, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, &Error{Proto: "blame", Input: line}
	}
	final, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, &Error{Proto: "blame", Input: line}
	}

	sha := fields[0]
	abbrev := sha
	if len(abbrev) > 8 {
		abbrev = abbrev[:8]
	}
	return &BlameRecord{
		SHA:       sha,
		AbbrevSHA: abbrev,
		OrigLnum:  orig,
		FinalLnum: final,
	}, nil
}
