package wdtest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/workdir"
)

// TestManageOps tests RemoveFile, RemoveDir, RemoveAll, Rename, Copy, Link.
func TestManageOps(t *testing.T, newRoot Factory) {
	t.Run("RemoveFile", func(t *testing.T) {
		testManageOpsRemoveFile(t, newRoot())
	})
	t.Run("RemoveDir", func(t *testing.T) {
		testManageOpsRemoveDir(t, newRoot())
	})
	t.Run("RemoveDirNonEmpty", func(t *testing.T) {
		testManageOpsRemoveDirNonEmpty(t, newRoot())
	})
	t.Run("RemoveAll", func(t *testing.T) {
		testManageOpsRemoveAll(t, newRoot())
	})
	t.Run("Rename", func(t *testing.T) {
		testManageOpsRename(t, newRoot())
	})
	t.Run("Copy", func(t *testing.T) {
		testManageOpsCopy(t, newRoot())
	})
	t.Run("CopyOverwrites", func(t *testing.T) {
		testManageOpsCopyOverwrites(t, newRoot())
	})
	t.Run("Link", func(t *testing.T) {
		testManageOpsLink(t, newRoot())
	})
}

func testManageOpsRemoveFile(t *testing.T, root workdir.WorkingDir) {
	if err := root.WriteFile("file.txt", []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile(file.txt): setup failed: %v", err)
	}

	if err := root.RemoveFile("file.txt"); err != nil {
		t.Fatalf("RemoveFile(file.txt): got error %v, want nil", err)
	}
	if root.Exists("file.txt") {
		t.Error("Exists(file.txt) after remove: got true, want false")
	}

	if err := root.RemoveFile("file.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("RemoveFile(file.txt) repeated: got error %v, want fs.ErrNotExist", err)
	}
}

func testManageOpsRemoveDir(t *testing.T, root workdir.WorkingDir) {
	if err := root.Mkdir("empty", 0o755); err != nil {
		t.Fatalf("Mkdir(empty): setup failed: %v", err)
	}

	if err := root.RemoveDir("empty"); err != nil {
		t.Fatalf("RemoveDir(empty): got error %v, want nil", err)
	}
	if root.Exists("empty") {
		t.Error("Exists(empty) after remove: got true, want false")
	}
}

func testManageOpsRemoveDirNonEmpty(t *testing.T, root workdir.WorkingDir) {
	if err := root.MkdirAll("full", 0o755); err != nil {
		t.Fatalf("MkdirAll(full): setup failed: %v", err)
	}
	if err := root.WriteFile("full/file.txt", []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile(full/file.txt): setup failed: %v", err)
	}

	// A non-empty directory cannot be removed non-recursively.
	if err := root.RemoveDir("full"); err == nil {
		t.Fatal("RemoveDir(full) on non-empty dir: got nil, want error")
	}
	if !root.Exists("full/file.txt") {
		t.Error("Exists(full/file.txt) after failed remove: got false, want true")
	}

	// RemoveAll succeeds on the same directory.
	if err := root.RemoveAll("full"); err != nil {
		t.Fatalf("RemoveAll(full): got error %v, want nil", err)
	}
	if root.Exists("full") {
		t.Error("Exists(full) after RemoveAll: got true, want false")
	}
}

func testManageOpsRemoveAll(t *testing.T, root workdir.WorkingDir) {
	if err := root.MkdirAll("tree/nested/deep", 0o755); err != nil {
		t.Fatalf("MkdirAll(tree/nested/deep): setup failed: %v", err)
	}
	if err := root.WriteFile("tree/nested/deep/file.txt", []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}

	if err := root.RemoveAll("tree"); err != nil {
		t.Fatalf("RemoveAll(tree): got error %v, want nil", err)
	}
	if root.Exists("tree") {
		t.Error("Exists(tree) after RemoveAll: got true, want false")
	}

	// RemoveAll on a missing path is not an error.
	if err := root.RemoveAll("tree"); err != nil {
		t.Errorf("RemoveAll(tree) repeated: got error %v, want nil", err)
	}
}

func testManageOpsRename(t *testing.T, root workdir.WorkingDir) {
	content := []byte("rename content")
	if err := root.WriteFile("old.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(old.txt): setup failed: %v", err)
	}

	if err := root.Rename("old.txt", "new.txt"); err != nil {
		t.Fatalf("Rename(old.txt, new.txt): got error %v, want nil", err)
	}
	if root.Exists("old.txt") {
		t.Error("Exists(old.txt) after rename: got true, want false")
	}

	data, err := root.ReadFile("new.txt")
	if err != nil {
		t.Fatalf("ReadFile(new.txt): got error %v, want nil", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("ReadFile(new.txt): got %q, want %q", data, content)
	}

	if err := root.Rename("missing.txt", "other.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Rename(missing.txt, other.txt): got error %v, want fs.ErrNotExist", err)
	}
}

func testManageOpsCopy(t *testing.T, root workdir.WorkingDir) {
	content := []byte("copy content")
	if err := root.WriteFile("src.txt", content, 0o600); err != nil {
		t.Fatalf("WriteFile(src.txt): setup failed: %v", err)
	}

	n, err := root.Copy("src.txt", "dst.txt")
	if err != nil {
		t.Fatalf("Copy(src.txt, dst.txt): got error %v, want nil", err)
	}
	if n != int64(len(content)) {
		t.Errorf("Copy(): got %d bytes, want %d", n, len(content))
	}

	data, err := root.ReadFile("dst.txt")
	if err != nil {
		t.Fatalf("ReadFile(dst.txt): got error %v, want nil", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("ReadFile(dst.txt): got %q, want %q", data, content)
	}

	// The source keeps its content and permission bits travel with the copy.
	if !root.Exists("src.txt") {
		t.Error("Exists(src.txt) after copy: got false, want true")
	}
	srcInfo, err := root.Stat("src.txt")
	if err != nil {
		t.Fatalf("Stat(src.txt): got error %v, want nil", err)
	}
	dstInfo, err := root.Stat("dst.txt")
	if err != nil {
		t.Fatalf("Stat(dst.txt): got error %v, want nil", err)
	}
	if srcInfo.Mode().Perm() != dstInfo.Mode().Perm() {
		t.Errorf("Copy(): permissions got %v, want %v", dstInfo.Mode().Perm(), srcInfo.Mode().Perm())
	}
}

func testManageOpsCopyOverwrites(t *testing.T, root workdir.WorkingDir) {
	if err := root.WriteFile("src.txt", []byte("new"), 0o644); err != nil {
		t.Fatalf("WriteFile(src.txt): setup failed: %v", err)
	}
	if err := root.WriteFile("dst.txt", []byte("previous destination content"), 0o644); err != nil {
		t.Fatalf("WriteFile(dst.txt): setup failed: %v", err)
	}

	if _, err := root.Copy("src.txt", "dst.txt"); err != nil {
		t.Fatalf("Copy(src.txt, dst.txt): got error %v, want nil", err)
	}

	s, err := root.ReadFileString("dst.txt")
	if err != nil {
		t.Fatalf("ReadFileString(dst.txt): got error %v, want nil", err)
	}
	if s != "new" {
		t.Errorf("ReadFileString(dst.txt): got %q, want %q", s, "new")
	}
}

func testManageOpsLink(t *testing.T, root workdir.WorkingDir) {
	content := []byte("linked content")
	if err := root.WriteFile("original.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(original.txt): setup failed: %v", err)
	}

	if err := root.Link("original.txt", "hardlink.txt"); err != nil {
		t.Fatalf("Link(original.txt, hardlink.txt): got error %v, want nil", err)
	}

	data, err := root.ReadFile("hardlink.txt")
	if err != nil {
		t.Fatalf("ReadFile(hardlink.txt): got error %v, want nil", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("ReadFile(hardlink.txt): got %q, want %q", data, content)
	}

	// Both names refer to the same inode: a write through one is visible
	// through the other.
	if err := root.WriteFile("original.txt", []byte("updated"), 0o644); err != nil {
		t.Fatalf("WriteFile(original.txt): got error %v, want nil", err)
	}
	s, err := root.ReadFileString("hardlink.txt")
	if err != nil {
		t.Fatalf("ReadFileString(hardlink.txt): got error %v, want nil", err)
	}
	if s != "updated" {
		t.Errorf("ReadFileString(hardlink.txt): got %q, want %q", s, "updated")
	}

	// Linking over an existing name fails.
	if err := root.Link("original.txt", "hardlink.txt"); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Link(original.txt, hardlink.txt) repeated: got error %v, want fs.ErrExist", err)
	}
}
