// Package glob expands glob patterns against a filesystem. Matching of
// individual path segments is delegated to github.com/bmatcuk/doublestar;
// this package contributes pattern splitting, match options and the lazy
// traversal that feeds segment matches from directory listings.
package glob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type segKind int

const (
	segLiteral segKind = iota // plain name, stat'ed directly
	segMatch                  // wildcard segment, matched per entry
	segAny                    // `**`, zero or more directories
)

type segment struct {
	kind segKind
	text string
}

// Pattern is a compiled glob pattern rooted at a literal base directory.
type Pattern struct {
	text string
	root string
	segs []segment
	opts Options
}

// Glob compiles pattern with the given options. It fails if any wildcard
// segment is syntactically malformed.
func Glob(pattern string, opts Options) (*Pattern, error) {
	root, comps := Split(pattern)
	if root == "" {
		root = "."
	}

	p := &Pattern{text: pattern, root: root, opts: opts}
	for _, comp := range comps {
		switch {
		case comp == "**":
			p.segs = append(p.segs, segment{kind: segAny})
		case hasMeta(comp):
			if !doublestar.ValidatePattern(comp) {
				return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, comp)
			}
			p.segs = append(p.segs, segment{kind: segMatch, text: comp})
		default:
			p.segs = append(p.segs, segment{kind: segLiteral, text: comp})
		}
	}
	return p, nil
}

func (p *Pattern) String() string {
	return p.text
}

// Split breaks an OS path into its volume/root part and its remaining
// components. The root is "" for relative paths.
func Split(path string) (root string, comps []string) {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]
	root = vol
	if len(rest) > 0 && os.IsPathSeparator(rest[0]) {
		root += string(filepath.Separator)
		for len(rest) > 0 && os.IsPathSeparator(rest[0]) {
			rest = rest[1:]
		}
	}

	start := 0
	for i := 0; i <= len(rest); i++ {
		if i == len(rest) || os.IsPathSeparator(rest[i]) {
			if i > start {
				comps = append(comps, rest[start:i])
			}
			start = i + 1
		}
	}
	return root, comps
}

func hasMeta(comp string) bool {
	return strings.ContainsAny(comp, "*?[{")
}
