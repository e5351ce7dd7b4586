//go:build unix

package resolve

import (
	"fmt"
	"os"
)

// describePermissionDenied reports the directory's permission bits so the
// user can see which mode forbids access.
func describePermissionDenied(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "permission denied"
	}
	return fmt.Sprintf("the permissions of %03o do not allow access for this user", info.Mode().Perm())
}
