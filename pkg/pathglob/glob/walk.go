package glob

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Iter returns the matches of the pattern on fsys as a lazy sequence of
// (path, error) pairs. No filesystem access happens until the sequence is
// consumed, and stopping early performs no further access. The sequence is
// finite, yields paths in a deterministic order, and is single-consumer:
// iterate it once, from any goroutine. A directory that cannot be listed
// contributes one error element and the walk continues with its siblings.
func (p *Pattern) Iter(fsys FS) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		p.walk(fsys, p.root, 0, yield)
	}
}

// walk matches p.segs[idx:] under dir. It returns false once the consumer
// stops the iteration.
func (p *Pattern) walk(fsys FS, dir string, idx int, yield func(string, error) bool) bool {
	if idx == len(p.segs) {
		return yield(dir, nil)
	}

	seg := p.segs[idx]
	last := idx == len(p.segs)-1

	switch seg.kind {
	case segLiteral:
		target := filepath.Join(dir, seg.text)
		info, err := fsys.Lstat(target)
		if err != nil {
			// Absent literal segments simply contribute no matches, but
			// anything else (such as an unsearchable parent) is reported.
			if errors.Is(err, fs.ErrNotExist) {
				return true
			}
			return yield("", err)
		}
		if last {
			return yield(target, nil)
		}
		if !info.IsDir() {
			return true
		}
		return p.walk(fsys, target, idx+1, yield)

	case segMatch:
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return yield("", err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if p.hideDotEntry(seg.text, name) {
				continue
			}
			ok, err := p.matchSegment(seg.text, name)
			if err != nil {
				if !yield("", err) {
					return false
				}
				continue
			}
			if !ok {
				continue
			}
			child := filepath.Join(dir, name)
			if last {
				if !yield(child, nil) {
					return false
				}
			} else if entry.IsDir() {
				if !p.walk(fsys, child, idx+1, yield) {
					return false
				}
			}
		}
		return true

	default: // segAny
		// `**` matches zero directories first, then descends. When it is
		// the final segment it also matches the files at each level.
		if !p.walk(fsys, dir, idx+1, yield) {
			return false
		}
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return yield("", err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				if !p.opts.RecurseHiddenDirs && strings.HasPrefix(name, ".") {
					continue
				}
				if !p.walk(fsys, filepath.Join(dir, name), idx, yield) {
					return false
				}
				continue
			}
			if !last || p.hideDotEntry("**", name) {
				continue
			}
			if !yield(filepath.Join(dir, name), nil) {
				return false
			}
		}
		return true
	}
}

func (p *Pattern) matchSegment(pattern, name string) (bool, error) {
	if !p.opts.CaseSensitive {
		pattern = strings.ToLower(pattern)
		name = strings.ToLower(name)
	}
	return doublestar.Match(pattern, name)
}

// hideDotEntry applies RequireLiteralLeadingDot: a wildcard segment only
// sees dotfiles when it starts with a literal dot itself.
func (p *Pattern) hideDotEntry(pattern, name string) bool {
	return p.opts.RequireLiteralLeadingDot &&
		strings.HasPrefix(name, ".") &&
		!strings.HasPrefix(pattern, ".")
}
