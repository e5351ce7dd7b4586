package expand

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// PathWith resolves path against the base directory cwd without touching the
// filesystem: a leading tilde is replaced by the user's home directory,
// relative paths are joined to cwd, and `.`/`..` segments are collapsed
// lexically. Wildcard characters pass through untouched. It never fails; if
// the home directory cannot be determined the tilde is left as-is.
func PathWith(path string, cwd string) string {
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}

// Canonicalize resolves path against cwd to an absolute, symlink-free form.
// Unlike PathWith it performs filesystem lookups and fails when the target
// does not exist.
func Canonicalize(path string, cwd string) (string, error) {
	return filepath.EvalSymlinks(PathWith(path, cwd))
}
