package wdtest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/jmgilman/go/workdir"
)

// TestReadOps tests the read-only operations: Open, Stat, Lstat, ReadDir,
// ReadFile, ReadFileString, Readlink, Exists, TryExists, Canonicalize.
func TestReadOps(t *testing.T, newRoot Factory) {
	root := newRoot()
	testContent := []byte("test file content")

	if err := root.MkdirAll("testdir", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir): setup failed: %v", err)
	}
	if err := root.WriteFile("testdir/testfile.txt", testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	t.Run("Open", func(t *testing.T) {
		testReadOpsOpen(t, root, testContent)
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		testReadOpsOpenNotExist(t, root)
	})
	t.Run("StatFile", func(t *testing.T) {
		testReadOpsStatFile(t, root, testContent)
	})
	t.Run("StatDir", func(t *testing.T) {
		testReadOpsStatDir(t, root)
	})
	t.Run("ReadDir", func(t *testing.T) {
		testReadOpsReadDir(t, root)
	})
	t.Run("ReadFile", func(t *testing.T) {
		testReadOpsReadFile(t, root, testContent)
	})
	t.Run("ReadFileString", func(t *testing.T) {
		testReadOpsReadFileString(t, root, testContent)
	})
	t.Run("Readlink", func(t *testing.T) {
		testReadOpsReadlink(t, root)
	})
	t.Run("Exists", func(t *testing.T) {
		testReadOpsExists(t, root)
	})
	t.Run("TryExists", func(t *testing.T) {
		testReadOpsTryExists(t, root)
	})
	t.Run("Canonicalize", func(t *testing.T) {
		testReadOpsCanonicalize(t, root)
	})
}

func testReadOpsOpen(t *testing.T, root workdir.WorkingDir, testContent []byte) {
	f, err := root.Open("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("Open(testdir/testfile.txt): got error %v, want nil", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadAll(): got %q, want %q", data, testContent)
	}
}

func testReadOpsOpenNotExist(t *testing.T, root workdir.WorkingDir) {
	_, err := root.Open("testdir/missing.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(testdir/missing.txt): got error %v, want fs.ErrNotExist", err)
	}
}

func testReadOpsStatFile(t *testing.T, root workdir.WorkingDir, testContent []byte) {
	info, err := root.Stat("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("Stat(testdir/testfile.txt): got error %v, want nil", err)
	}
	if info.Name() != "testfile.txt" {
		t.Errorf("Stat(): Name() got %q, want %q", info.Name(), "testfile.txt")
	}
	if info.IsDir() {
		t.Error("Stat(): IsDir() got true, want false")
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("Stat(): Size() got %d, want %d", info.Size(), len(testContent))
	}
}

func testReadOpsStatDir(t *testing.T, root workdir.WorkingDir) {
	info, err := root.Stat("testdir")
	if err != nil {
		t.Fatalf("Stat(testdir): got error %v, want nil", err)
	}
	if !info.IsDir() {
		t.Error("Stat(testdir): IsDir() got false, want true")
	}
}

func testReadOpsReadDir(t *testing.T, root workdir.WorkingDir) {
	entries, err := root.ReadDir("testdir")
	if err != nil {
		t.Fatalf("ReadDir(testdir): got error %v, want nil", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ReadDir(testdir): got %d entries, want 1", len(entries))
	}
	if entries[0].Name() != "testfile.txt" {
		t.Errorf("ReadDir(testdir): entry got %q, want %q", entries[0].Name(), "testfile.txt")
	}
}

func testReadOpsReadFile(t *testing.T, root workdir.WorkingDir, testContent []byte) {
	data, err := root.ReadFile("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("ReadFile(testdir/testfile.txt): got error %v, want nil", err)
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadFile(): got %q, want %q", data, testContent)
	}
}

func testReadOpsReadFileString(t *testing.T, root workdir.WorkingDir, testContent []byte) {
	s, err := root.ReadFileString("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("ReadFileString(testdir/testfile.txt): got error %v, want nil", err)
	}
	if s != string(testContent) {
		t.Errorf("ReadFileString(): got %q, want %q", s, testContent)
	}
}

func testReadOpsReadlink(t *testing.T, root workdir.WorkingDir) {
	if err := os.Symlink("testfile.txt", root.Join("testdir/link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	target, err := root.Readlink("testdir/link")
	if err != nil {
		t.Fatalf("Readlink(testdir/link): got error %v, want nil", err)
	}
	if target != "testfile.txt" {
		t.Errorf("Readlink(testdir/link): got %q, want %q", target, "testfile.txt")
	}

	// Readlink on a regular file is an error.
	if _, err := root.Readlink("testdir/testfile.txt"); err == nil {
		t.Error("Readlink(testdir/testfile.txt): got nil, want error")
	}
}

func testReadOpsExists(t *testing.T, root workdir.WorkingDir) {
	if !root.Exists("testdir/testfile.txt") {
		t.Error("Exists(testdir/testfile.txt): got false, want true")
	}
	if !root.Exists("testdir") {
		t.Error("Exists(testdir): got false, want true")
	}
	if root.Exists("testdir/missing.txt") {
		t.Error("Exists(testdir/missing.txt): got true, want false")
	}
	if !root.Contains("testdir/testfile.txt") {
		t.Error("Contains(testdir/testfile.txt): got false, want true")
	}
}

func testReadOpsTryExists(t *testing.T, root workdir.WorkingDir) {
	found, err := root.TryExists("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("TryExists(testdir/testfile.txt): got error %v, want nil", err)
	}
	if !found {
		t.Error("TryExists(testdir/testfile.txt): got false, want true")
	}

	// Plain absence is not an error.
	found, err = root.TryExists("testdir/missing.txt")
	if err != nil {
		t.Fatalf("TryExists(testdir/missing.txt): got error %v, want nil", err)
	}
	if found {
		t.Error("TryExists(testdir/missing.txt): got true, want false")
	}
}

func testReadOpsCanonicalize(t *testing.T, root workdir.WorkingDir) {
	resolved, err := root.Canonicalize("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("Canonicalize(testdir/testfile.txt): got error %v, want nil", err)
	}
	if !strings.HasSuffix(resolved, "testfile.txt") {
		t.Errorf("Canonicalize(): got %q, want suffix %q", resolved, "testfile.txt")
	}

	// Canonicalization requires the path to exist.
	if _, err := root.Canonicalize("testdir/missing.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Canonicalize(testdir/missing.txt): got error %v, want fs.ErrNotExist", err)
	}
}
