package signs

import (
	"testing"

	"github.com/jmcdonald/gitsigns/internal/parse"
)

func TestFromHunks(t *testing.T) {
	t.Run("pure add marks every new line", func(t *testing.T) {
		h := parse.Hunk{OldStart: 2, OldCount: 0, NewStart: 3, NewCount: 3,
			Lines: []string{"+a", "+b", "+c"}}
		got := FromHunks([]parse.Hunk{h})
		if len(got) != 3 {
			t.Fatalf("got %d signs", len(got))
		}
		for i, s := range got {
			if s.Type != Add || s.Lnum != 3+i {
				t.Errorf("sign %d = %+v", i, s)
			}
		}
	})

	t.Run("pure delete collapses to one sign", func(t *testing.T) {
		h := parse.Hunk{OldStart: 5, OldCount: 2, NewStart: 4, NewCount: 0,
			Lines: []string{"-a", "-b"}}
		got := FromHunks([]parse.Hunk{h})
		if len(got) != 1 {
			t.Fatalf("got %d signs", len(got))
		}
		if got[0].Type != Delete || got[0].Lnum != 4 || got[0].Count != 2 {
			t.Errorf("sign = %+v", got[0])
		}
	})

	t.Run("delete at line zero becomes a top delete on line one", func(t *testing.T) {
		h := parse.Hunk{OldStart: 1, OldCount: 2, NewStart: 0, NewCount: 0,
			Lines: []string{"-a", "-b"}}
		got := FromHunks([]parse.Hunk{h})
		if got[0].Type != TopDelete || got[0].Lnum != 1 {
			t.Errorf("sign = %+v", got[0])
		}
	})

	t.Run("balanced change marks the span", func(t *testing.T) {
		h := parse.Hunk{OldStart: 2, OldCount: 2, NewStart: 2, NewCount: 2,
			Lines: []string{"-a", "-b", "+a2", "+b2"}}
		got := FromHunks([]parse.Hunk{h})
		if len(got) != 2 {
			t.Fatalf("got %d signs", len(got))
		}
		if got[0].Type != Change || got[1].Type != Change {
			t.Errorf("signs = %+v", got)
		}
	})

	t.Run("shrinking change flags its last line", func(t *testing.T) {
		h := parse.Hunk{OldStart: 2, OldCount: 3, NewStart: 2, NewCount: 1,
			Lines: []string{"-a", "-b", "-c", "+a2"}}
		got := FromHunks([]parse.Hunk{h})
		if len(got) != 1 {
			t.Fatalf("got %d signs", len(got))
		}
		if got[0].Type != ChangeDelete || got[0].Lnum != 2 {
			t.Errorf("sign = %+v", got[0])
		}
	})

	t.Run("growing change adds surplus lines", func(t *testing.T) {
		h := parse.Hunk{OldStart: 2, OldCount: 1, NewStart: 2, NewCount: 3,
			Lines: []string{"-a", "+a2", "+b", "+c"}}
		got := FromHunks([]parse.Hunk{h})
		if len(got) != 3 {
			t.Fatalf("got %d signs", len(got))
		}
		if got[0].Type != Change || got[1].Type != Add || got[2].Type != Add {
			t.Errorf("signs = %+v", got)
		}
		if got[2].Lnum != 4 {
			t.Errorf("last add at %d", got[2].Lnum)
		}
	})
}

func TestSummarize(t *testing.T) {
	hunks := []parse.Hunk{
		{Lines: []string{"+a", "+b"}},               // 2 added
		{Lines: []string{"-x"}},                     // 1 removed
		{Lines: []string{"-m", "+m2", "+n"}},        // 1 changed, 1 added
		{Lines: []string{"-p", "-q", "+p2"}},        // 1 changed, 1 removed
	}
	s := Summarize(hunks)
	if s.Added != 3 || s.Changed != 2 || s.Removed != 2 {
		t.Errorf("summary = %+v", s)
	}
}

func TestHunkAt(t *testing.T) {
	hunks := []parse.Hunk{
		{OldStart: 1, OldCount: 1, NewStart: 2, NewCount: 3},
		{OldStart: 9, OldCount: 2, NewStart: 10, NewCount: 0},
	}

	t.Run("inside a span", func(t *testing.T) {
		if h := HunkAt(hunks, 3); h == nil || h.NewStart != 2 {
			t.Errorf("got %+v", h)
		}
	})

	t.Run("delete hunk covers its collapsed line", func(t *testing.T) {
		if h := HunkAt(hunks, 10); h == nil || h.NewStart != 10 {
			t.Errorf("got %+v", h)
		}
	})

	t.Run("outside all spans", func(t *testing.T) {
		if h := HunkAt(hunks, 7); h != nil {
			t.Errorf("got %+v", h)
		}
	})
}

func TestTypeString(t *testing.T) {
	cases := map[Type]string{
		Add:          "add",
		Change:       "change",
		Delete:       "delete",
		ChangeDelete: "changedelete",
		TopDelete:    "topdelete",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
