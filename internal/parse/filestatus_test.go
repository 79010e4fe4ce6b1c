package parse

import "testing"

func TestFileStatusLine(t *testing.T) {
	t.Run("tracked entry", func(t *testing.T) {
		fs, err := FileStatusLine("100644 5716ca5987cbf97d6bb54920bea6adde242d87e6 0\tmain.go")
		if err != nil {
			t.Fatal(err)
		}
		if fs.Relpath != "main.go" {
			t.Errorf("Relpath = %q", fs.Relpath)
		}
		if fs.Mode != "100644" {
			t.Errorf("Mode = %q", fs.Mode)
		}
		if fs.Object != "5716ca5987cbf97d6bb54920bea6adde242d87e6" {
			t.Errorf("Object = %q", fs.Object)
		}
		if fs.HasConflict {
			t.Error("unexpected conflict flag")
		}
	})

	t.Run("conflict stage suppresses mode and object", func(t *testing.T) {
		fs, err := FileStatusLine("100644 5716ca5987cbf97d6bb54920bea6adde242d87e6 2\tmain.go")
		if err != nil {
			t.Fatal(err)
		}
		if !fs.HasConflict {
			t.Error("expected conflict flag")
		}
		if fs.Mode != "" || fs.Object != "" {
			t.Errorf("conflict entry should not capture mode/object: %+v", fs)
		}
		if fs.Relpath != "main.go" {
			t.Errorf("Relpath = %q", fs.Relpath)
		}
	})

	t.Run("untracked entry is a bare path", func(t *testing.T) {
		fs, err := FileStatusLine("docs/new file.md")
		if err != nil {
			t.Fatal(err)
		}
		if fs.Relpath != "docs/new file.md" {
			t.Errorf("Relpath = %q", fs.Relpath)
		}
		if fs.Mode != "" || fs.Object != "" || fs.HasConflict {
			t.Errorf("untracked entry should be empty apart from the path: %+v", fs)
		}
	})

	t.Run("malformed tracked metadata fails", func(t *testing.T) {
		if _, err := FileStatusLine("100644 abc\tmain.go"); err == nil {
			t.Error("expected error for short metadata")
		}
		if _, err := FileStatusLine("100644 abc x\tmain.go"); err == nil {
			t.Error("expected error for non-numeric stage")
		}
	})
}
