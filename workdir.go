package workdir

import (
	"io/fs"
	"os"
)

// WorkingDir is the full operation surface of a working directory.
//
// It is composed of four category interfaces plus the cross-root MoveTo
// operation. Dir is the local-disk implementation; consumers that only need
// a subset should accept the narrower category interface instead.
type WorkingDir interface {
	ReadOps
	WriteOps
	ManageOps
	LinkOps

	// Path returns the base path the working directory was constructed with.
	// The base is never mutated after construction.
	Path() string

	// Join returns the base path joined with name as a new, independently
	// owned path. Use this when the joined path has to outlive a single
	// call; the operation methods compose their paths internally and
	// should be preferred otherwise.
	Join(name string) string

	// MoveTo moves name from this working directory to the same relative
	// location under dest, creating any missing parent directories under
	// dest first. If parent creation fails, the move is not attempted.
	//
	// Parent creation and the rename are two independent filesystem
	// operations with no atomicity between them, and the rename inherits
	// the platform's restrictions (it fails across mount points).
	MoveTo(dest WorkingDir, name string) error
}

// ReadOps defines the read-only operations of a working directory.
// All paths are interpreted relative to the base path.
type ReadOps interface {
	// Open opens the named file for reading, like os.Open.
	Open(name string) (*os.File, error)

	// OpenFile opens the named file with the given flags and permission
	// bits, like os.OpenFile.
	OpenFile(name string, flag int, perm fs.FileMode) (*os.File, error)

	// Stat returns metadata for the named file, following symlinks.
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns metadata for the named file without following symlinks.
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries sorted by
	// filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// ReadFileString reads the named file and returns its contents as a
	// string.
	ReadFileString(name string) (string, error)

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)

	// Exists reports whether the named path points at an existing entity,
	// following symlinks. Any error while checking, including permission
	// errors and broken symlinks, reports false. Callers that need to
	// distinguish absence from failure should use TryExists.
	Exists(name string) bool

	// Contains is an alias for Exists that reads naturally at search call
	// sites ("does this root contain the file").
	Contains(name string) bool

	// TryExists reports whether the named path points at an existing
	// entity. Unlike Exists it surfaces errors: plain absence (including a
	// broken symlink target) returns (false, nil), while any other
	// failure, such as permission denied on an ancestor, returns the error.
	//
	// Neither Exists nor TryExists can prevent time-of-check to
	// time-of-use races; the result is advisory.
	TryExists(name string) (bool, error)

	// Canonicalize returns the absolute form of the named path with all
	// intermediate components normalized and symbolic links resolved.
	// The path must exist.
	Canonicalize(name string) (string, error)
}

// WriteOps defines the file and directory creation operations of a working
// directory.
type WriteOps interface {
	// WriteFile writes data to the named file, creating it if necessary
	// and truncating it if it exists. It does not create missing parent
	// directories; call CreateParents first when they may be absent.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a new, empty directory at the named path. It fails if
	// the parent does not exist or the directory already exists.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates the named directory along with any missing parents.
	// It succeeds if the directory already exists.
	MkdirAll(name string, perm fs.FileMode) error

	// CreateParents creates every directory in the named path's parent
	// chain. A path with no parent component is a no-op, not an error.
	CreateParents(name string) error
}

// ManageOps defines operations that remove, rename, or duplicate entries.
type ManageOps interface {
	// RemoveFile removes the named file.
	RemoveFile(name string) error

	// RemoveDir removes the named directory. It fails if the directory is
	// not empty.
	RemoveDir(name string) error

	// RemoveAll removes the named path and any children it contains.
	// Symbolic links are not followed; the link entry itself is removed.
	RemoveAll(name string) error

	// Rename renames oldname to newname, replacing newname if it already
	// exists. Both paths are relative to the same base; the rename fails
	// across mount points.
	Rename(oldname, newname string) error

	// Copy copies the contents and permission bits of the file at from to
	// the file at to, overwriting to if it exists. It returns the number
	// of bytes copied.
	Copy(from, to string) (int64, error)
}

// LinkOps defines hard link creation.
type LinkOps interface {
	// Link creates newname as a hard link to oldname. Most systems
	// require both paths to be on the same filesystem.
	Link(oldname, newname string) error
}
