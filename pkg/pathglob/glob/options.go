package glob

import "strings"

// Options controls how pattern segments are matched against directory
// entries. The zero value is not useful; start from DefaultOptions.
type Options struct {
	// CaseSensitive makes wildcard segments distinguish letter case.
	CaseSensitive bool
	// RequireLiteralLeadingDot hides dotfiles from wildcard segments unless
	// the segment itself starts with a literal dot.
	RequireLiteralLeadingDot bool
	// RecurseHiddenDirs lets `**` descend into hidden directories.
	RecurseHiddenDirs bool
}

// DefaultOptions returns the default matching behavior: case-sensitive,
// dotfiles visible, `**` descends everywhere.
func DefaultOptions() Options {
	return Options{
		CaseSensitive:     true,
		RecurseHiddenDirs: true,
	}
}

// HasWildcard reports whether path contains a wildcard marker and should be
// expanded as a pattern rather than resolved as a literal target.
func HasWildcard(path string) bool {
	return strings.Contains(path, "*")
}
