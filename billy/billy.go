// Package billy adapts a working directory to the go-billy filesystem
// interface, so a workdir.Dir can be handed to go-git and other billy
// consumers.
//
// The adapter is interop, not an abstraction layer: every operation still
// goes straight to the local disk through the workdir operations. Billy's
// contract differs from workdir's in one respect: creation operations
// (Create, OpenFile with O_CREATE, Rename, Symlink) create missing parent
// directories, matching the behavior of billy's own osfs backend.
package billy

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/go/workdir"
)

// Filesystem wraps a working directory as a billy.Filesystem.
type Filesystem struct {
	wd *workdir.Dir
}

// New returns a billy.Filesystem rooted at dir.
func New(dir *workdir.Dir) *Filesystem {
	return &Filesystem{wd: dir}
}

// Unwrap returns the underlying working directory.
func (f *Filesystem) Unwrap() *workdir.Dir {
	return f.wd
}

// Create creates or truncates the named file, creating missing parent
// directories per the billy contract.
func (f *Filesystem) Create(filename string) (billy.File, error) {
	return f.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

// Open opens the named file for reading.
func (f *Filesystem) Open(filename string) (billy.File, error) {
	file, err := f.wd.Open(filename)
	if err != nil {
		return nil, err
	}
	return &File{file: file, name: filename}, nil
}

// OpenFile opens the named file with the given flags and permission bits.
// When O_CREATE is set, missing parent directories are created first.
func (f *Filesystem) OpenFile(filename string, flag int, perm os.FileMode) (billy.File, error) {
	if flag&os.O_CREATE != 0 {
		if err := f.wd.CreateParents(filename); err != nil {
			return nil, err
		}
	}
	file, err := f.wd.OpenFile(filename, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: file, name: filename}, nil
}

// Stat returns metadata for the named file, following symlinks.
func (f *Filesystem) Stat(filename string) (os.FileInfo, error) {
	return f.wd.Stat(filename)
}

// Rename renames oldpath to newpath, creating newpath's missing parent
// directories per the billy contract.
func (f *Filesystem) Rename(oldpath, newpath string) error {
	if err := f.wd.CreateParents(newpath); err != nil {
		return err
	}
	return f.wd.Rename(oldpath, newpath)
}

// Remove removes the named file or empty directory.
func (f *Filesystem) Remove(filename string) error {
	return f.wd.RemoveFile(filename)
}

// Join joins path elements, billy style. The result is still relative to
// the filesystem root.
func (f *Filesystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// TempFile creates a new temporary file under dir (the filesystem root when
// dir is empty), opened for reading and writing.
func (f *Filesystem) TempFile(dir, prefix string) (billy.File, error) {
	if dir == "" {
		dir = "."
	}
	if err := f.wd.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	file, err := os.CreateTemp(f.wd.Join(dir), prefix)
	if err != nil {
		return nil, err
	}
	name := filepath.Join(dir, filepath.Base(file.Name()))
	return &File{file: file, name: name}, nil
}

// ReadDir reads the named directory and returns its entries sorted by
// filename, as billy's []os.FileInfo.
func (f *Filesystem) ReadDir(path string) ([]os.FileInfo, error) {
	entries, err := f.wd.ReadDir(path)
	if err != nil {
		return nil, err
	}
	infos := make([]os.FileInfo, len(entries))
	for i, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		infos[i] = info
	}
	return infos, nil
}

// MkdirAll creates the named directory along with any missing parents.
func (f *Filesystem) MkdirAll(filename string, perm os.FileMode) error {
	return f.wd.MkdirAll(filename, perm)
}

// Lstat returns metadata for the named file without following symlinks.
func (f *Filesystem) Lstat(filename string) (os.FileInfo, error) {
	return f.wd.Lstat(filename)
}

// Symlink creates link as a symbolic link to target, creating link's
// missing parent directories per the billy contract.
func (f *Filesystem) Symlink(target, link string) error {
	if err := f.wd.CreateParents(link); err != nil {
		return err
	}
	return os.Symlink(target, f.wd.Join(link))
}

// Readlink returns the destination of the named symbolic link.
func (f *Filesystem) Readlink(link string) (string, error) {
	return f.wd.Readlink(link)
}

// Chroot returns a filesystem rooted at path under this one. It is a new
// working directory over the joined base; the directory does not have to
// exist yet. Scoping is by path composition only, it is not a jail: a
// caller that passes ".." components can still reach the parent.
func (f *Filesystem) Chroot(path string) (billy.Filesystem, error) {
	return New(workdir.New(f.wd.Join(path))), nil
}

// Root returns the base path of the underlying working directory.
func (f *Filesystem) Root() string {
	return f.wd.Path()
}

// Compile-time interface check.
var _ billy.Filesystem = (*Filesystem)(nil)
