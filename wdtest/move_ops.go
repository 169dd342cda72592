package wdtest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/workdir"
)

// TestMoveTo tests the cross-root move operation.
func TestMoveTo(t *testing.T, newRoot Factory) {
	t.Run("MovesAcrossRoots", func(t *testing.T) {
		testMoveToAcrossRoots(t, newRoot(), newRoot())
	})
	t.Run("CreatesDestinationParents", func(t *testing.T) {
		testMoveToCreatesParents(t, newRoot(), newRoot())
	})
	t.Run("MissingSource", func(t *testing.T) {
		testMoveToMissingSource(t, newRoot(), newRoot())
	})
	t.Run("IndependentCompositions", func(t *testing.T) {
		testMoveToIndependentCompositions(t, newRoot(), newRoot())
	})
}

func testMoveToAcrossRoots(t *testing.T, src, dst workdir.WorkingDir) {
	if err := src.CreateParents("x/y.txt"); err != nil {
		t.Fatalf("CreateParents(x/y.txt): setup failed: %v", err)
	}
	if err := src.WriteFile("x/y.txt", []byte("hi"), 0o644); err != nil {
		t.Fatalf("WriteFile(x/y.txt): setup failed: %v", err)
	}
	if !src.Exists("x/y.txt") {
		t.Fatal("Exists(x/y.txt) under source: got false, want true")
	}

	if err := src.MoveTo(dst, "x/y.txt"); err != nil {
		t.Fatalf("MoveTo(dst, x/y.txt): got error %v, want nil", err)
	}

	if src.Exists("x/y.txt") {
		t.Error("Exists(x/y.txt) under source after move: got true, want false")
	}
	if !dst.Exists("x/y.txt") {
		t.Error("Exists(x/y.txt) under destination after move: got false, want true")
	}

	s, err := dst.ReadFileString("x/y.txt")
	if err != nil {
		t.Fatalf("ReadFileString(x/y.txt) under destination: got error %v, want nil", err)
	}
	if s != "hi" {
		t.Errorf("ReadFileString(x/y.txt): got %q, want %q", s, "hi")
	}
}

func testMoveToCreatesParents(t *testing.T, src, dst workdir.WorkingDir) {
	if err := src.MkdirAll("deeply/nested/path", 0o755); err != nil {
		t.Fatalf("MkdirAll: setup failed: %v", err)
	}
	if err := src.WriteFile("deeply/nested/path/file.txt", []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}

	// The destination chain does not exist yet; MoveTo creates it.
	if dst.Exists("deeply") {
		t.Fatal("Exists(deeply) under destination: got true before move, want false")
	}
	if err := src.MoveTo(dst, "deeply/nested/path/file.txt"); err != nil {
		t.Fatalf("MoveTo: got error %v, want nil", err)
	}
	if !dst.Exists("deeply/nested/path/file.txt") {
		t.Error("Exists(deeply/nested/path/file.txt) under destination: got false, want true")
	}
}

func testMoveToMissingSource(t *testing.T, src, dst workdir.WorkingDir) {
	err := src.MoveTo(dst, "x/missing.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("MoveTo(dst, x/missing.txt): got error %v, want fs.ErrNotExist", err)
	}

	// Parent creation runs before the rename, so the destination chain is
	// left in place even when the rename fails. Accepted best-effort
	// semantics, not rolled back.
	if !dst.Exists("x") {
		t.Error("Exists(x) under destination after failed move: got false, want true")
	}
}

func testMoveToIndependentCompositions(t *testing.T, a, b workdir.WorkingDir) {
	// Round-trip distinct content through two roots at once to prove the
	// source and destination compositions do not alias each other.
	if err := a.WriteFile("one.txt", []byte("content of a"), 0o644); err != nil {
		t.Fatalf("WriteFile(one.txt): setup failed: %v", err)
	}
	if err := b.WriteFile("one.txt", []byte("content of b"), 0o644); err != nil {
		t.Fatalf("WriteFile(one.txt): setup failed: %v", err)
	}

	if err := a.MoveTo(b, "two.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("MoveTo(b, two.txt): got error %v, want fs.ErrNotExist", err)
	}

	sa, err := a.ReadFileString("one.txt")
	if err != nil {
		t.Fatalf("ReadFileString(one.txt) under a: got error %v, want nil", err)
	}
	sb, err := b.ReadFileString("one.txt")
	if err != nil {
		t.Fatalf("ReadFileString(one.txt) under b: got error %v, want nil", err)
	}
	if sa != "content of a" {
		t.Errorf("ReadFileString under a: got %q, want %q", sa, "content of a")
	}
	if sb != "content of b" {
		t.Errorf("ReadFileString under b: got %q, want %q", sb, "content of b")
	}
}
