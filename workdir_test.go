package workdir_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/workdir"
	"github.com/jmgilman/go/workdir/wdtest"
)

// TestDirConformance runs the full conformance suite against Dir.
func TestDirConformance(t *testing.T) {
	wdtest.TestSuite(t, func() workdir.WorkingDir {
		return workdir.New(t.TempDir())
	})
}

// TestNew verifies construction is pure: no filesystem access, base kept
// verbatim.
func TestNew(t *testing.T) {
	d := workdir.New("does/not/exist")
	require.NotNil(t, d)
	assert.Equal(t, "does/not/exist", d.Path())
	assert.False(t, d.Exists("."))
}

// TestString verifies the trailing-separator rendering.
func TestString(t *testing.T) {
	assert.Equal(t, `Dir("my/root/")`, workdir.New("my/root").String())
	assert.Equal(t, `Dir("my/root/")`, workdir.New("my/root/").String())
	assert.Equal(t, `Dir("/")`, workdir.New("").String())
}

// TestJoin verifies the owned join convenience.
func TestJoin(t *testing.T) {
	d := workdir.New("my/root")
	assert.Equal(t, "my/root/path/to/file.txt", d.Join("path/to/file.txt"))
	assert.Equal(t, "my/root", d.Join("."))
}

// TestRootIsolation verifies a write under one root is not visible under an
// unrelated root or under the process's own working directory.
func TestRootIsolation(t *testing.T) {
	base := t.TempDir()
	a := workdir.New(filepath.Join(base, "a"))
	b := workdir.New(filepath.Join(base, "b"))

	require.NoError(t, a.CreateParents("file.txt"))
	require.NoError(t, a.WriteFile("file.txt", []byte("isolated"), 0o644))

	assert.True(t, a.Exists("file.txt"))
	assert.False(t, b.Exists("file.txt"))

	// Not visible relative to the global current directory.
	_, err := os.Stat("file.txt")
	assert.True(t, os.IsNotExist(err))
}

// TestScenario is the canonical two-root flow: create parents, write, move
// across roots, verify relocation and content.
func TestScenario(t *testing.T) {
	base := t.TempDir()
	a := workdir.New(filepath.Join(base, "root", "a"))
	b := workdir.New(filepath.Join(base, "root", "b"))

	require.NoError(t, a.CreateParents("x/y.txt"))
	require.NoError(t, a.WriteFile("x/y.txt", []byte("hi"), 0o644))
	require.True(t, a.Exists("x/y.txt"))

	require.NoError(t, a.MoveTo(b, "x/y.txt"))

	assert.False(t, a.Exists("x/y.txt"))
	assert.True(t, b.Exists("x/y.txt"))

	s, err := b.ReadFileString("x/y.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

// TestCreateParentsNoParent verifies the no-parent case is a no-op that
// never fails and never creates anything, even with an empty base.
func TestCreateParentsNoParent(t *testing.T) {
	d := workdir.New("")
	require.NoError(t, d.CreateParents("file.txt"))

	_, err := os.Stat("file.txt")
	assert.True(t, os.IsNotExist(err))
}

// TestExistsSwallowsErrors verifies Exists reports false on permission
// errors while TryExists surfaces them.
func TestExistsSwallowsErrors(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "sealed"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "sealed", "file.txt"), []byte("data"), 0o644))
	require.NoError(t, os.Chmod(filepath.Join(base, "sealed"), 0o000))
	t.Cleanup(func() {
		_ = os.Chmod(filepath.Join(base, "sealed"), 0o755)
	})

	d := workdir.New(base)
	assert.False(t, d.Exists("sealed/file.txt"))

	_, err := d.TryExists("sealed/file.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

// TestTryExistsBrokenSymlink verifies a broken symlink reads as absent, not
// as an error.
func TestTryExistsBrokenSymlink(t *testing.T) {
	base := t.TempDir()
	d := workdir.New(base)
	if err := os.Symlink("missing-target", d.Join("broken")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	found, err := d.TryExists("broken")
	require.NoError(t, err)
	assert.False(t, found)

	// The link entry itself is still observable without following it.
	info, err := d.Lstat("broken")
	require.NoError(t, err)
	assert.Equal(t, fs.ModeSymlink, info.Mode().Type())
}

// TestCanonicalize verifies symlink resolution to the target's real path.
func TestCanonicalize(t *testing.T) {
	base := t.TempDir()
	d := workdir.New(base)
	require.NoError(t, d.MkdirAll("real", 0o755))
	require.NoError(t, d.WriteFile("real/file.txt", []byte("data"), 0o644))
	if err := os.Symlink("real", d.Join("alias")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	viaAlias, err := d.Canonicalize("alias/file.txt")
	require.NoError(t, err)
	viaReal, err := d.Canonicalize("real/file.txt")
	require.NoError(t, err)

	assert.Equal(t, viaReal, viaAlias)
	assert.True(t, filepath.IsAbs(viaAlias))
}

// TestFS verifies the io/fs view plugs into stdlib consumers.
func TestFS(t *testing.T) {
	d := workdir.New(t.TempDir())
	require.NoError(t, d.MkdirAll("sub", 0o755))
	require.NoError(t, d.WriteFile("sub/file.txt", []byte("via fs"), 0o644))

	data, err := fs.ReadFile(d.FS(), "sub/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "via fs", string(data))

	var seen []string
	err = fs.WalkDir(d.FS(), ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		seen = append(seen, path)
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, seen, "sub/file.txt")
}

// TestAbsoluteNameOverridesBase verifies platform join semantics: an
// absolute relative-argument ignores the base entirely.
func TestAbsoluteNameOverridesBase(t *testing.T) {
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "file.txt"), []byte("outside"), 0o644))

	d := workdir.New(t.TempDir())
	s, err := d.ReadFileString(filepath.Join(outside, "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "outside", s)
}

// TestConcurrentUse verifies independent operations on one Dir from
// multiple goroutines.
func TestConcurrentUse(t *testing.T) {
	d := workdir.New(t.TempDir())
	require.NoError(t, d.MkdirAll("shared", 0o755))

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		name := filepath.Join("shared", string(rune('a'+i))+".txt")
		go func() {
			if err := d.WriteFile(name, []byte(name), 0o644); err != nil {
				done <- err
				return
			}
			s, err := d.ReadFileString(name)
			if err == nil && s != name {
				err = assert.AnError
			}
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}
}
