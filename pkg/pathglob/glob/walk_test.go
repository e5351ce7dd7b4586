package glob

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

// globTree builds a small fixture tree and returns its root.
func globTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	for _, name := range []string{"a.txt", "b.txt", ".hidden.txt", "notes.md", "UPPER.TXT"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	for _, sub := range []string{"sub", filepath.Join("sub", "nested")} {
		if err := os.Mkdir(filepath.Join(dir, sub), 0755); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{
		filepath.Join("sub", "c.txt"),
		filepath.Join("sub", "nested", "d.txt"),
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func collect(t *testing.T, pattern string, opts Options) (matches []string, errs []error) {
	t.Helper()
	p, err := Glob(pattern, opts)
	if err != nil {
		t.Fatalf("Glob(%q) error = %v", pattern, err)
	}
	for match, err := range p.Iter(OS()) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		matches = append(matches, match)
	}
	return matches, errs
}

func relNames(t *testing.T, root string, paths []string) []string {
	t.Helper()
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		names = append(names, filepath.ToSlash(rel))
	}
	return names
}

func TestIter(t *testing.T) {
	root := globTree(t)

	tests := []struct {
		name    string
		pattern string
		opts    Options
		want    []string
	}{
		{
			name:    "suffix wildcard",
			pattern: filepath.Join(root, "*.txt"),
			opts:    DefaultOptions(),
			want:    []string{".hidden.txt", "a.txt", "b.txt"},
		},
		{
			name:    "star matches every entry including directories",
			pattern: filepath.Join(root, "*"),
			opts:    DefaultOptions(),
			want:    []string{".hidden.txt", "UPPER.TXT", "a.txt", "b.txt", "notes.md", "sub"},
		},
		{
			name:    "wildcard through intermediate directory",
			pattern: filepath.Join(root, "*", "*.txt"),
			opts:    DefaultOptions(),
			want:    []string{"sub/c.txt"},
		},
		{
			name:    "literal segments stat directly",
			pattern: filepath.Join(root, "sub", "c.txt"),
			opts:    DefaultOptions(),
			want:    []string{"sub/c.txt"},
		},
		{
			name:    "absent literal yields nothing",
			pattern: filepath.Join(root, "missing", "*.txt"),
			opts:    DefaultOptions(),
			want:    nil,
		},
		{
			name:    "doublestar recurses",
			pattern: filepath.Join(root, "**", "*.txt"),
			opts:    DefaultOptions(),
			want:    []string{".hidden.txt", "a.txt", "b.txt", "sub/c.txt", "sub/nested/d.txt"},
		},
		{
			name:    "trailing doublestar matches files and directories",
			pattern: filepath.Join(root, "**"),
			opts:    DefaultOptions(),
			want: []string{
				".", ".hidden.txt", "UPPER.TXT", "a.txt", "b.txt", "notes.md",
				"sub", "sub/c.txt", "sub/nested", "sub/nested/d.txt",
			},
		},
		{
			name:    "trailing doublestar respects literal leading dot",
			pattern: filepath.Join(root, "**"),
			opts:    Options{CaseSensitive: true, RequireLiteralLeadingDot: true, RecurseHiddenDirs: true},
			want: []string{
				".", "UPPER.TXT", "a.txt", "b.txt", "notes.md",
				"sub", "sub/c.txt", "sub/nested", "sub/nested/d.txt",
			},
		},
		{
			name:    "case-insensitive matching",
			pattern: filepath.Join(root, "upper*"),
			opts:    Options{CaseSensitive: false, RecurseHiddenDirs: true},
			want:    []string{"UPPER.TXT"},
		},
		{
			name:    "literal leading dot hides dotfiles",
			pattern: filepath.Join(root, "*.txt"),
			opts:    Options{CaseSensitive: true, RequireLiteralLeadingDot: true, RecurseHiddenDirs: true},
			want:    []string{"a.txt", "b.txt"},
		},
		{
			name:    "dot pattern still sees dotfiles",
			pattern: filepath.Join(root, ".*"),
			opts:    Options{CaseSensitive: true, RequireLiteralLeadingDot: true, RecurseHiddenDirs: true},
			want:    []string{".hidden.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, errs := collect(t, tt.pattern, tt.opts)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			got := relNames(t, root, matches)
			sort.Strings(got)
			want := append([]string(nil), tt.want...)
			sort.Strings(want)
			if len(got) != len(want) {
				t.Fatalf("matches = %v, want %v", got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("matches[%d] = %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}

func TestIterIsLazy(t *testing.T) {
	root := globTree(t)

	p, err := Glob(filepath.Join(root, "*.md"), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	seq := p.Iter(OS())

	// Created after construction but before consumption, so it must appear.
	if err := os.WriteFile(filepath.Join(root, "late.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var got []string
	for match, err := range seq {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, filepath.Base(match))
	}
	sort.Strings(got)
	want := []string{"late.md", "notes.md"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("matches = %v, want %v", got, want)
	}
}

func TestIterStopsEarly(t *testing.T) {
	root := globTree(t)

	p, err := Glob(filepath.Join(root, "*"), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for range p.Iter(OS()) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("consumed %d elements after break, want 1", count)
	}
}

func TestIterConsumableFromAnotherGoroutine(t *testing.T) {
	root := globTree(t)

	p, err := Glob(filepath.Join(root, "*.txt"), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	seq := p.Iter(OS())

	done := make(chan int)
	go func() {
		count := 0
		for _, err := range seq {
			if err == nil {
				count++
			}
		}
		done <- count
	}()

	if got := <-done; got != 3 {
		t.Errorf("goroutine consumed %d matches, want 3", got)
	}
}

func TestIterReportsLiteralSegmentInUnsearchableDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are POSIX-specific")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, permissions are not enforced")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	if err := os.Mkdir(locked, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(locked, "f.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	matches, errs := collect(t, filepath.Join(locked, "f.txt"), DefaultOptions())

	if len(matches) != 0 {
		t.Errorf("matches = %v, want none", matches)
	}
	if len(errs) != 1 {
		t.Fatalf("got %d error elements, want the stat failure surfaced: %v", len(errs), errs)
	}
}

func TestIterReportsUnreadableDirAndContinues(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are POSIX-specific")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, permissions are not enforced")
	}

	root := t.TempDir()
	for _, sub := range []string{"locked", "open"} {
		if err := os.Mkdir(filepath.Join(root, sub), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "open", "f.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	matches, errs := collect(t, filepath.Join(root, "*", "*.txt"), DefaultOptions())

	if len(errs) != 1 {
		t.Fatalf("got %d error elements, want 1: %v", len(errs), errs)
	}
	if len(matches) != 1 || filepath.Base(matches[0]) != "f.txt" {
		t.Errorf("matches = %v, want the readable sibling's file", matches)
	}
}
