package glob

import (
	"io/fs"
	"os"
)

// FS is the filesystem surface the walker needs. Implementations exist for
// the local disk and for sftp trees; both must return ReadDir entries in
// name order so repeated walks of an unchanged tree are identical.
type FS interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	Lstat(name string) (fs.FileInfo, error)
}

type osFS struct{}

// OS returns an FS backed by the local filesystem.
func OS() FS {
	return osFS{}
}

func (osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}
