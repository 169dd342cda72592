package billy

import (
	"os"

	"github.com/go-git/go-billy/v5"
)

// File wraps *os.File to satisfy billy.File. It stores the name the file
// was opened with, relative to the filesystem root, since *os.File reports
// the joined on-disk path instead.
type File struct {
	file *os.File
	name string
}

// Name returns the name provided to Open, Create, or OpenFile.
func (f *File) Name() string {
	return f.name
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// ReadAt implements io.ReaderAt.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	return f.file.ReadAt(p, off)
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Close implements io.Closer.
func (f *File) Close() error {
	return f.file.Close()
}

// Truncate changes the size of the file without changing the I/O offset.
func (f *File) Truncate(size int64) error {
	return f.file.Truncate(size)
}

// Lock is a no-op. The adapter does not arbitrate advisory locks, matching
// billy's in-memory backend.
func (f *File) Lock() error {
	return nil
}

// Unlock is a no-op; see Lock.
func (f *File) Unlock() error {
	return nil
}

// Compile-time interface check.
var _ billy.File = (*File)(nil)
