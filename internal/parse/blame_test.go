package parse

import (
	"errors"
	"strings"
	"testing"
)

func TestBlame(t *testing.T) {
	t.Run("header and keyed fields", func(t *testing.T) {
		rec, err := Blame([]string{
			"abcd1234 3 3",
			"author Jane",
			"author-mail <j@x.com>",
			"\tsome code",
		})
		if err != nil {
			t.Fatal(err)
		}
		if rec.SHA != "abcd1234" {
			t.Errorf("SHA = %q", rec.SHA)
		}
		if rec.AbbrevSHA != "abcd1234" {
			t.Errorf("AbbrevSHA = %q", rec.AbbrevSHA)
		}
		if rec.OrigLnum != 3 || rec.FinalLnum != 3 {
			t.Errorf("line numbers = %d,%d", rec.OrigLnum, rec.FinalLnum)
		}
		if rec.Author != "Jane" {
			t.Errorf("Author = %q", rec.Author)
		}
		if rec.AuthorMail != "<j@x.com>" {
			t.Errorf("AuthorMail = %q", rec.AuthorMail)
		}
	})

	t.Run("abbreviated sha is first 8 characters", func(t *testing.T) {
		sha := strings.Repeat("a", 40)
		rec, err := Blame([]string{sha + " 1 1"})
		if err != nil {
			t.Fatal(err)
		}
		if rec.AbbrevSHA != strings.Repeat("a", 8) {
			t.Errorf("AbbrevSHA = %q", rec.AbbrevSHA)
		}
	})

	t.Run("full porcelain record", func(t *testing.T) {
		rec, err := Blame([]string{
			"deadbeefdeadbeefdeadbeefdeadbeefdeadbeef 10 12 1",
			"author Jane Doe",
			"author-mail <jane@example.com>",
			"author-time 1652712345",
			"author-tz +0100",
			"committer Bob",
			"committer-mail <bob@example.com>",
			"committer-time 1652712400",
			"committer-tz -0500",
			"summary fix the thing",
			"previous 1111111111111111111111111111111111111111 file.go",
			"filename file.go",
			"\tif x != nil {",
		})
		if err != nil {
			t.Fatal(err)
		}
		if rec.Author != "Jane Doe" {
			t.Errorf("multi-word value not rejoined: %q", rec.Author)
		}
		if rec.AuthorTime != "1652712345" || rec.AuthorTZ != "+0100" {
			t.Errorf("author time fields: %q %q", rec.AuthorTime, rec.AuthorTZ)
		}
		if rec.CommitterMail != "<bob@example.com>" {
			t.Errorf("CommitterMail = %q", rec.CommitterMail)
		}
		if rec.Summary != "fix the thing" {
			t.Errorf("Summary = %q", rec.Summary)
		}
		if !strings.HasPrefix(rec.Previous, "1111111111") {
			t.Errorf("Previous = %q", rec.Previous)
		}
		if rec.Filename != "file.go" {
			t.Errorf("Filename = %q", rec.Filename)
		}
	})

	t.Run("repeated key last write wins", func(t *testing.T) {
		rec, err := Blame([]string{
			"abcd1234 1 1",
			"summary first",
			"summary second",
		})
		if err != nil {
			t.Fatal(err)
		}
		if rec.Summary != "second" {
			t.Errorf("Summary = %q", rec.Summary)
		}
	})

	t.Run("tab line terminates the record", func(t *testing.T) {
		rec, err := Blame([]string{
			"abcd1234 1 1",
			"author Jane",
			"\tsource text",
			"summary after the source",
		})
		if err != nil {
			t.Fatal(err)
		}
		if rec.Summary != "" {
			t.Errorf("fields after the source line should be ignored, got %q", rec.Summary)
		}
	})

	t.Run("unknown keys are dropped", func(t *testing.T) {
		rec, err := Blame([]string{
			"abcd1234 1 1",
			"boundary",
			"author Jane",
		})
		if err != nil {
			t.Fatal(err)
		}
		if rec.Author != "Jane" {
			t.Errorf("Author = %q", rec.Author)
		}
	})

	t.Run("short header fails", func(t *testing.T) {
		_, err := Blame([]string{"abcd1234 3"})
		var perr *Error
		if !errors.As(err, &perr) {
			t.Fatalf("expected *parse.Error, got %v", err)
		}
	})

	t.Run("non-numeric line number fails", func(t *testing.T) {
		_, err := Blame([]string{"abcd1234 x 3"})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("no output yields nil record", func(t *testing.T) {
		rec, err := Blame(nil)
		if err != nil || rec != nil {
			t.Errorf("got %v, %v", rec, err)
		}
	})
}
