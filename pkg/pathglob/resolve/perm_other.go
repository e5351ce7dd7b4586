//go:build !unix

package resolve

// describePermissionDenied returns a generic message on platforms without
// POSIX permission bits.
func describePermissionDenied(path string) string {
	return "permission denied"
}
