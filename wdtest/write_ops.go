package wdtest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/workdir"
)

// TestWriteOps tests the creation operations: WriteFile, Mkdir, MkdirAll,
// CreateParents.
func TestWriteOps(t *testing.T, newRoot Factory) {
	t.Run("WriteFileRoundTrip", func(t *testing.T) {
		testWriteOpsRoundTrip(t, newRoot())
	})
	t.Run("WriteFileTruncates", func(t *testing.T) {
		testWriteOpsTruncates(t, newRoot())
	})
	t.Run("WriteFileNoParents", func(t *testing.T) {
		testWriteOpsNoParents(t, newRoot())
	})
	t.Run("Mkdir", func(t *testing.T) {
		testWriteOpsMkdir(t, newRoot())
	})
	t.Run("MkdirAll", func(t *testing.T) {
		testWriteOpsMkdirAll(t, newRoot())
	})
	t.Run("CreateParents", func(t *testing.T) {
		testWriteOpsCreateParents(t, newRoot())
	})
	t.Run("CreateParentsBareFilename", func(t *testing.T) {
		testWriteOpsCreateParentsBare(t, newRoot())
	})
}

func testWriteOpsRoundTrip(t *testing.T, root workdir.WorkingDir) {
	content := []byte("round trip content")
	if err := root.WriteFile("file.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(file.txt): got error %v, want nil", err)
	}

	data, err := root.ReadFile("file.txt")
	if err != nil {
		t.Fatalf("ReadFile(file.txt): got error %v, want nil", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("ReadFile(file.txt): got %q, want %q", data, content)
	}
}

func testWriteOpsTruncates(t *testing.T, root workdir.WorkingDir) {
	if err := root.WriteFile("file.txt", []byte("a much longer first version"), 0o644); err != nil {
		t.Fatalf("WriteFile(file.txt): setup failed: %v", err)
	}
	if err := root.WriteFile("file.txt", []byte("short"), 0o644); err != nil {
		t.Fatalf("WriteFile(file.txt): second write failed: %v", err)
	}

	s, err := root.ReadFileString("file.txt")
	if err != nil {
		t.Fatalf("ReadFileString(file.txt): got error %v, want nil", err)
	}
	if s != "short" {
		t.Errorf("ReadFileString(file.txt): got %q, want %q", s, "short")
	}
}

func testWriteOpsNoParents(t *testing.T, root workdir.WorkingDir) {
	// WriteFile never creates missing parent directories.
	err := root.WriteFile("missing/dir/file.txt", []byte("data"), 0o644)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("WriteFile(missing/dir/file.txt): got error %v, want fs.ErrNotExist", err)
	}
}

func testWriteOpsMkdir(t *testing.T, root workdir.WorkingDir) {
	if err := root.Mkdir("newdir", 0o755); err != nil {
		t.Fatalf("Mkdir(newdir): got error %v, want nil", err)
	}
	info, err := root.Stat("newdir")
	if err != nil {
		t.Fatalf("Stat(newdir): got error %v, want nil", err)
	}
	if !info.IsDir() {
		t.Error("Stat(newdir): IsDir() got false, want true")
	}

	if err := root.Mkdir("newdir", 0o755); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Mkdir(newdir) on existing dir: got error %v, want fs.ErrExist", err)
	}
	if err := root.Mkdir("no/parent/dir", 0o755); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Mkdir(no/parent/dir): got error %v, want fs.ErrNotExist", err)
	}
}

func testWriteOpsMkdirAll(t *testing.T, root workdir.WorkingDir) {
	if err := root.MkdirAll("a/b/c", 0o755); err != nil {
		t.Fatalf("MkdirAll(a/b/c): got error %v, want nil", err)
	}
	if !root.Exists("a/b/c") {
		t.Error("Exists(a/b/c): got false, want true")
	}

	// MkdirAll on an existing directory is a no-op.
	if err := root.MkdirAll("a/b/c", 0o755); err != nil {
		t.Errorf("MkdirAll(a/b/c) repeated: got error %v, want nil", err)
	}
}

func testWriteOpsCreateParents(t *testing.T, root workdir.WorkingDir) {
	if err := root.CreateParents("path/to/file.txt"); err != nil {
		t.Fatalf("CreateParents(path/to/file.txt): got error %v, want nil", err)
	}

	// The parent chain exists, the leaf does not.
	if !root.Exists("path/to") {
		t.Error("Exists(path/to): got false, want true")
	}
	if root.Exists("path/to/file.txt") {
		t.Error("Exists(path/to/file.txt): got true, want false")
	}

	// A write into the created chain now succeeds.
	if err := root.WriteFile("path/to/file.txt", []byte("hi"), 0o644); err != nil {
		t.Errorf("WriteFile(path/to/file.txt): got error %v, want nil", err)
	}
}

func testWriteOpsCreateParentsBare(t *testing.T, root workdir.WorkingDir) {
	// A bare filename's only parent is the root itself; nothing new is
	// created.
	if err := root.CreateParents("file.txt"); err != nil {
		t.Fatalf("CreateParents(file.txt): got error %v, want nil", err)
	}

	entries, err := root.ReadDir(".")
	if err != nil {
		t.Fatalf("ReadDir(.): got error %v, want nil", err)
	}
	if len(entries) != 0 {
		t.Errorf("ReadDir(.): got %d entries, want 0", len(entries))
	}
}
