package cli

import "path/filepath"

// Relative trims the shared prefix from a matched path for display. Paths
// outside the prefix are returned unchanged.
func Relative(prefix, path string) string {
	if prefix == "" {
		return path
	}
	rel, err := filepath.Rel(prefix, path)
	if err != nil {
		return path
	}
	if len(rel) >= 2 && rel[:2] == ".." {
		return path
	}
	return rel
}
