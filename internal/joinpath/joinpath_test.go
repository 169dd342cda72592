package joinpath

import (
	"errors"
	"testing"
)

// TestJoin verifies the syntactic join semantics for each composition case.
func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		base string
		rel  string
		want string
	}{
		{"BothContribute", "my/root", "path/to/file.txt", "my/root/path/to/file.txt"},
		{"BaseEndsWithSeparator", "my/root/", "file.txt", "my/root/file.txt"},
		{"RootBase", "/", "etc", "/etc"},
		{"EmptyBase", "", "file.txt", "file.txt"},
		{"DotBase", ".", "file.txt", "file.txt"},
		{"EmptyRel", "my/root", "", "my/root"},
		{"DotRel", "my/root", ".", "my/root"},
		{"AbsoluteRelOverridesBase", "my/root", "/abs/path", "/abs/path"},
		{"NoCleaning", "my/root", "a/../b", "my/root/a/../b"},
		{"BothEmpty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Join(tt.base, tt.rel)
			if got != tt.want {
				t.Errorf("Join(%q, %q): got %q, want %q", tt.base, tt.rel, got, tt.want)
			}
		})
	}
}

// TestWith verifies the composed path handed to the callback and that the
// callback's error is returned unchanged.
func TestWith(t *testing.T) {
	var seen string
	err := With("my/root", "file.txt", func(path string) error {
		seen = path
		return nil
	})
	if err != nil {
		t.Fatalf("With: got error %v, want nil", err)
	}
	if seen != "my/root/file.txt" {
		t.Errorf("With: callback saw %q, want %q", seen, "my/root/file.txt")
	}

	sentinel := errors.New("sentinel")
	err = With("my/root", "file.txt", func(string) error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Errorf("With: got error %v, want sentinel", err)
	}
}

// TestWith2 verifies two simultaneous compositions are independent, even
// when rooted at different bases.
func TestWith2(t *testing.T) {
	var from, to string
	err := With2("root/a", "x/y.txt", "root/b", "x/y.txt", func(p1, p2 string) error {
		from, to = p1, p2
		return nil
	})
	if err != nil {
		t.Fatalf("With2: got error %v, want nil", err)
	}
	if from != "root/a/x/y.txt" {
		t.Errorf("With2: first composition got %q, want %q", from, "root/a/x/y.txt")
	}
	if to != "root/b/x/y.txt" {
		t.Errorf("With2: second composition got %q, want %q", to, "root/b/x/y.txt")
	}
}

// BenchmarkJoin measures the single-allocation slow path.
func BenchmarkJoin(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Join("some/base/dir", "relative/path.txt")
	}
}

// BenchmarkJoinAbsoluteRel measures the zero-allocation override fast path.
func BenchmarkJoinAbsoluteRel(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Join("some/base/dir", "/absolute/path.txt")
	}
}

// BenchmarkJoinEmptyBase measures the zero-allocation pass-through fast path.
func BenchmarkJoinEmptyBase(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Join("", "relative/path.txt")
	}
}
