package sftpfs

import (
	"io/fs"
	"sort"

	"github.com/pkg/sftp"

	"github.com/shellkit/pathglob/pkg/pathglob/glob"
)

// Tree adapts an sftp client to glob.FS so patterns can be expanded against
// a remote filesystem with the same walker used for local disks.
type Tree struct {
	client *sftp.Client
}

var _ glob.FS = (*Tree)(nil)

// NewTree wraps an existing sftp client.
func NewTree(client *sftp.Client) *Tree {
	return &Tree{client: client}
}

func (t *Tree) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := t.client.ReadDir(name)
	if err != nil {
		return nil, err
	}

	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	// The sftp server does not guarantee listing order; glob.FS does.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

func (t *Tree) Lstat(name string) (fs.FileInfo, error) {
	return t.client.Lstat(name)
}
