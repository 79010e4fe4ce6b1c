package parse

import (
	"path/filepath"
	"testing"
)

func TestParseRepoInfo(t *testing.T) {
	lines := func(head string) []string {
		return []string{"/work/repo", "/work/repo/.git", head}
	}

	t.Run("plain branch passes through", func(t *testing.T) {
		info, err := ParseRepoInfo(lines("main"), RepoInfoOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if info.Toplevel != "/work/repo" {
			t.Errorf("Toplevel = %q", info.Toplevel)
		}
		if info.GitDir != "/work/repo/.git" {
			t.Errorf("GitDir = %q", info.GitDir)
		}
		if info.AbbrevHead != "main" {
			t.Errorf("AbbrevHead = %q", info.AbbrevHead)
		}
	})

	t.Run("placeholder with rebase marker reports sentinel", func(t *testing.T) {
		marker := filepath.Join("/work/repo/.git", "rebase-merge")
		info, err := ParseRepoInfo(lines("HEAD"), RepoInfoOptions{
			Exists: func(p string) bool { return p == marker },
		})
		if err != nil {
			t.Fatal(err)
		}
		if info.AbbrevHead != RebaseSentinel {
			t.Errorf("AbbrevHead = %q, want %q", info.AbbrevHead, RebaseSentinel)
		}
	})

	t.Run("rebase-apply marker also counts", func(t *testing.T) {
		marker := filepath.Join("/work/repo/.git", "rebase-apply")
		info, err := ParseRepoInfo(lines("HEAD"), RepoInfoOptions{
			Exists: func(p string) bool { return p == marker },
		})
		if err != nil {
			t.Fatal(err)
		}
		if info.AbbrevHead != RebaseSentinel {
			t.Errorf("AbbrevHead = %q", info.AbbrevHead)
		}
	})

	t.Run("placeholder without marker is blanked", func(t *testing.T) {
		info, err := ParseRepoInfo(lines("HEAD"), RepoInfoOptions{
			Exists: func(string) bool { return false },
		})
		if err != nil {
			t.Fatal(err)
		}
		if info.AbbrevHead != "" {
			t.Errorf("AbbrevHead = %q, want empty", info.AbbrevHead)
		}
	})

	t.Run("debug keeps the raw placeholder", func(t *testing.T) {
		info, err := ParseRepoInfo(lines("HEAD"), RepoInfoOptions{
			Exists: func(string) bool { return false },
			Debug:  true,
		})
		if err != nil {
			t.Fatal(err)
		}
		if info.AbbrevHead != DetachedPlaceholder {
			t.Errorf("AbbrevHead = %q", info.AbbrevHead)
		}
	})

	t.Run("relative git dir resolves against base dir", func(t *testing.T) {
		info, err := ParseRepoInfo([]string{"/work/repo", ".git", "main"}, RepoInfoOptions{
			BaseDir: "/work/repo",
		})
		if err != nil {
			t.Fatal(err)
		}
		if info.GitDir != filepath.Join("/work/repo", ".git") {
			t.Errorf("GitDir = %q", info.GitDir)
		}
	})

	t.Run("too few lines fails", func(t *testing.T) {
		_, err := ParseRepoInfo([]string{"/work/repo"}, RepoInfoOptions{})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
