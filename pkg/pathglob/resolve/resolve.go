// Package resolve turns a user-supplied path or glob pattern into the shared
// prefix of its matches and a lazy sequence of matching paths.
package resolve

import (
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/shellkit/pathglob/pkg/pathglob/expand"
	"github.com/shellkit/pathglob/pkg/pathglob/glob"
	"github.com/shellkit/pathglob/pkg/pathglob/span"
)

// Resolve expands pattern relative to cwd. It returns the longest prefix
// shared by every possible match ("" when there is none) and a lazy sequence
// of absolute matched paths. The prefix can be trimmed from each match to
// show the user a short relative form.
//
// A pattern without wildcard markers is resolved as a literal target: it must
// exist, a directory expands to its entries, and a file matches itself. A
// pattern with wildcards is handed to the glob walker without any existence
// check.
//
// The sequence defers all per-match filesystem access to consumption time.
// It may be handed to and consumed from another goroutine, but only by one
// consumer; abandoning it early is always safe. Per-entry traversal failures
// are yielded as elements rather than ending the sequence, tagged with
// errSpan. Errors returned by Resolve itself carry the pattern's own span
// for Not-Found and Permission-Denied, and errSpan for malformed patterns.
func Resolve(pattern span.Spanned, cwd string, errSpan span.Span, opts *glob.Options) (string, iter.Seq2[string, error], error) {
	path := expand.PathWith(pattern.Text, cwd)

	var prefix, globPattern string
	if glob.HasWildcard(path) {
		// A glob pattern is never existence-checked before expansion. The
		// prefix stops before the first wildcard-bearing component.
		prefix = wildcardPrefix(path)
		globPattern = path
	} else {
		canonical, err := expand.Canonicalize(pattern.Text, cwd)
		if err != nil {
			return "", nil, &Error{Kind: NotFound, Path: path, Span: pattern.Span}
		}
		info, err := os.Stat(canonical)
		if err != nil {
			return "", nil, &Error{Kind: NotFound, Path: canonical, Span: pattern.Span}
		}

		if info.IsDir() {
			if permissionDenied(canonical) {
				return "", nil, &Error{
					Kind:   PermissionDenied,
					Path:   canonical,
					Span:   pattern.Span,
					Detail: describePermissionDenied(canonical),
				}
			}
			if isEmptyDir(canonical) {
				// Valid result, nothing to expand.
				return canonical, emptySeq, nil
			}
			prefix = canonical
			globPattern = filepath.Join(canonical, "*")
		} else {
			prefix = parentOf(canonical)
			globPattern = canonical
		}
	}

	effective := glob.DefaultOptions()
	if opts != nil {
		effective = *opts
	}

	compiled, err := glob.Glob(globPattern, effective)
	if err != nil {
		return "", nil, &Error{Kind: PatternError, Path: globPattern, Span: errSpan, Detail: err.Error()}
	}

	matches := compiled.Iter(glob.OS())
	seq := func(yield func(string, error) bool) {
		for match, err := range matches {
			if err != nil {
				if !yield("", &Error{Kind: PatternError, Span: errSpan, Detail: err.Error()}) {
					return
				}
				continue
			}
			if !yield(match, nil) {
				return
			}
		}
	}
	return prefix, seq, nil
}

func emptySeq(yield func(string, error) bool) {}

// wildcardPrefix accumulates path components left to right, stopping before
// the first one that carries a wildcard marker.
func wildcardPrefix(path string) string {
	root, comps := glob.Split(path)
	prefix := root
	for _, comp := range comps {
		if glob.HasWildcard(comp) {
			break
		}
		prefix = filepath.Join(prefix, comp)
	}
	return prefix
}

// parentOf returns the parent directory of path, or "" when path has none.
func parentOf(path string) string {
	parent := filepath.Dir(path)
	if parent == path {
		return ""
	}
	return parent
}

// permissionDenied reports whether the directory cannot be opened for
// reading by the current process.
func permissionDenied(dir string) bool {
	f, err := os.Open(dir)
	if err != nil {
		return os.IsPermission(err)
	}
	f.Close()
	return false
}

// isEmptyDir reports whether the directory has no entries at all. An
// unreadable directory counts as empty; permission problems are caught
// before this check runs.
func isEmptyDir(dir string) bool {
	f, err := os.Open(dir)
	if err != nil {
		return true
	}
	defer f.Close()
	_, err = f.Readdirnames(1)
	return err == io.EOF
}
