package workdir

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/workdir/internal/joinpath"
)

// Dir is a working directory rooted at a base path on the local disk.
//
// The base path may be absolute or relative to the process's actual current
// directory; Dir treats it as opaque and never rewrites it. A Dir is
// immutable for its lifetime and holds no OS resources, so it needs no
// teardown and is safe for concurrent use.
type Dir struct {
	path string
}

// New returns a working directory rooted at base. The base directory does
// not have to exist yet; existence is only observed by the operations.
func New(base string) *Dir {
	return &Dir{path: base}
}

// Path returns the base path the Dir was constructed with.
func (d *Dir) Path() string {
	return d.path
}

// Join returns the base path joined with name as a new, independently owned
// path.
func (d *Dir) Join(name string) string {
	return d.join(name)
}

// FS returns an io/fs.FS view of the working directory, for use with
// fs.WalkDir, glob matchers, and other stdlib-compatible consumers.
func (d *Dir) FS() fs.FS {
	return os.DirFS(d.path)
}

// String renders the Dir with a guaranteed trailing separator, making the
// base visually distinct from a file path in logs and test output.
func (d *Dir) String() string {
	if n := len(d.path); n > 0 && os.IsPathSeparator(d.path[n-1]) {
		return `Dir("` + d.path + `")`
	}
	return `Dir("` + d.path + `/")`
}

// join composes the base with name for the duration of a single call
// expression. The result must not be stored; see internal/joinpath.
func (d *Dir) join(name string) string {
	return joinpath.Join(d.path, name)
}

// Open opens the named file for reading.
func (d *Dir) Open(name string) (*os.File, error) {
	return os.Open(d.join(name))
}

// OpenFile opens the named file with the given flags and permission bits.
func (d *Dir) OpenFile(name string, flag int, perm fs.FileMode) (*os.File, error) {
	return os.OpenFile(d.join(name), flag, perm)
}

// Stat returns metadata for the named file, following symlinks.
func (d *Dir) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(d.join(name))
}

// Lstat returns metadata for the named file without following symlinks.
func (d *Dir) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(d.join(name))
}

// ReadDir reads the named directory and returns its entries sorted by
// filename.
func (d *Dir) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(d.join(name))
}

// ReadFile reads the named file and returns its contents.
func (d *Dir) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(d.join(name))
}

// ReadFileString reads the named file and returns its contents as a string.
func (d *Dir) ReadFileString(name string) (string, error) {
	data, err := os.ReadFile(d.join(name))
	return string(data), err
}

// Readlink returns the destination of the named symbolic link.
func (d *Dir) Readlink(name string) (string, error) {
	return os.Readlink(d.join(name))
}

// Exists reports whether the named path points at an existing entity,
// following symlinks. All errors report false; use TryExists to tell
// absence apart from failure.
func (d *Dir) Exists(name string) bool {
	_, err := os.Stat(d.join(name))
	return err == nil
}

// Contains is an alias for Exists.
func (d *Dir) Contains(name string) bool {
	return d.Exists(name)
}

// TryExists reports whether the named path points at an existing entity.
// Plain absence returns (false, nil); any other failure is surfaced.
func (d *Dir) TryExists(name string) (bool, error) {
	_, err := os.Stat(d.join(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Canonicalize returns the absolute form of the named path with all
// intermediate components normalized and symbolic links resolved.
func (d *Dir) Canonicalize(name string) (string, error) {
	abs, err := filepath.Abs(d.join(name))
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// WriteFile writes data to the named file, creating it if necessary and
// truncating it if it exists. Missing parent directories are not created.
func (d *Dir) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return joinpath.With(d.path, name, func(path string) error {
		return os.WriteFile(path, data, perm)
	})
}

// Mkdir creates a new, empty directory at the named path.
func (d *Dir) Mkdir(name string, perm fs.FileMode) error {
	return joinpath.With(d.path, name, func(path string) error {
		return os.Mkdir(path, perm)
	})
}

// MkdirAll creates the named directory along with any missing parents.
func (d *Dir) MkdirAll(name string, perm fs.FileMode) error {
	return joinpath.With(d.path, name, func(path string) error {
		return os.MkdirAll(path, perm)
	})
}

// CreateParents creates every directory in the named path's parent chain,
// including the base itself when it is missing. A path with no parent
// component is a no-op.
func (d *Dir) CreateParents(name string) error {
	return joinpath.With(d.path, name, createParents)
}

// RemoveFile removes the named file.
func (d *Dir) RemoveFile(name string) error {
	return joinpath.With(d.path, name, os.Remove)
}

// RemoveDir removes the named directory, failing if it is not empty.
func (d *Dir) RemoveDir(name string) error {
	return joinpath.With(d.path, name, os.Remove)
}

// RemoveAll removes the named path and any children it contains. Symbolic
// links are not followed.
func (d *Dir) RemoveAll(name string) error {
	return joinpath.With(d.path, name, os.RemoveAll)
}

// Rename renames oldname to newname under the same base, replacing newname
// if it already exists.
func (d *Dir) Rename(oldname, newname string) error {
	return joinpath.With2(d.path, oldname, d.path, newname, os.Rename)
}

// Link creates newname as a hard link to oldname under the same base.
func (d *Dir) Link(oldname, newname string) error {
	return joinpath.With2(d.path, oldname, d.path, newname, os.Link)
}

// Copy copies the contents and permission bits of the file at from to the
// file at to, overwriting to. It returns the number of bytes copied.
func (d *Dir) Copy(from, to string) (n int64, err error) {
	err = joinpath.With2(d.path, from, d.path, to, func(src, dst string) error {
		n, err = copyFile(src, dst)
		return err
	})
	return n, err
}

// MoveTo moves name from this working directory to the same relative
// location under dest, creating any missing parent directories under dest
// first. Parent creation and the rename are two independent filesystem
// operations; a failure of parent creation short-circuits, and the created
// parents are left in place if the rename then fails.
func (d *Dir) MoveTo(dest WorkingDir, name string) error {
	return joinpath.With2(d.path, name, dest.Path(), name, func(oldpath, newpath string) error {
		if err := createParents(newpath); err != nil {
			return err
		}
		return os.Rename(oldpath, newpath)
	})
}

// createParents creates the parent directory chain of path. Paths with no
// parent component (a bare filename resolves to ".", the root is its own
// parent) succeed without touching the filesystem.
func createParents(path string) error {
	parent := filepath.Dir(path)
	if parent == "." || parent == path {
		return nil
	}
	return os.MkdirAll(parent, 0o755)
}

// copyFile duplicates a regular file, overwriting dst. The destination
// receives the source's permission bits, including when dst already existed
// with different ones.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, err
	}

	// O_CREATE perms are masked by the umask and ignored for a
	// pre-existing destination, so apply the source mode explicitly.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return n, err
	}
	return n, nil
}

// Compile-time interface check.
var _ WorkingDir = (*Dir)(nil)
