package patch

import (
	"strings"
	"testing"

	"github.com/jmcdonald/gitsigns/internal/parse"
)

func TestForHunk(t *testing.T) {
	h := parse.Hunk{
		OldStart: 3, OldCount: 1, NewStart: 3, NewCount: 2,
		Lines: []string{"-old", "+new", "+newer"},
	}

	t.Run("renders a complete zero-context patch", func(t *testing.T) {
		lines := ForHunk("pkg/file.go", "100644", h)
		want := []string{
			"diff --git a/pkg/file.go b/pkg/file.go",
			"index 000000..000000 100644",
			"--- a/pkg/file.go",
			"+++ b/pkg/file.go",
			"@@ -3,1 +3,2 @@",
			"-old",
			"+new",
			"+newer",
		}
		if len(lines) != len(want) {
			t.Fatalf("got %d lines:\n%s", len(lines), strings.Join(lines, "\n"))
		}
		for i := range want {
			if lines[i] != want[i] {
				t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
			}
		}
	})

	t.Run("missing mode defaults to regular file bits", func(t *testing.T) {
		lines := ForHunk("f", "", h)
		if lines[1] != "index 000000..000000 100644" {
			t.Errorf("index line = %q", lines[1])
		}
	})
}

func TestInvert(t *testing.T) {
	h := parse.Hunk{
		OldStart: 3, OldCount: 1, NewStart: 3, NewCount: 2,
		Lines: []string{"-old", "+new", "+newer"},
	}
	inv := Invert(h)

	t.Run("old and new sides swap", func(t *testing.T) {
		if inv.OldStart != 3 || inv.OldCount != 2 || inv.NewStart != 3 || inv.NewCount != 1 {
			t.Errorf("inverted header = %+v", inv)
		}
	})

	t.Run("markers flip with removals first", func(t *testing.T) {
		want := []string{"-new", "-newer", "+old"}
		if len(inv.Lines) != len(want) {
			t.Fatalf("lines = %v", inv.Lines)
		}
		for i := range want {
			if inv.Lines[i] != want[i] {
				t.Errorf("line %d = %q, want %q", i, inv.Lines[i], want[i])
			}
		}
	})

	t.Run("double inversion restores the line set", func(t *testing.T) {
		back := Invert(inv)
		if back.OldStart != h.OldStart || back.OldCount != h.OldCount ||
			back.NewStart != h.NewStart || back.NewCount != h.NewCount {
			t.Errorf("header not restored: %+v", back)
		}
		if back.Added() != h.Added() || back.Removed() != h.Removed() {
			t.Errorf("counts not restored: %+v", back)
		}
	})
}
