// Package joinpath composes a working directory's base path with relative
// path fragments at minimal allocation cost.
//
// The join is purely syntactic: no cleaning, no normalization, and no
// filesystem access. Existence is only ever observed by whatever call the
// composed path is passed to. Composition follows platform join semantics,
// so an absolute fragment overrides the base entirely.
//
// Join returns one of its inputs unchanged whenever it can (absolute
// fragment, empty base, empty fragment), which makes those paths free of
// allocation. When both sides contribute, exactly one string of the final
// size is built, inserting a separator only if the base does not already
// end at a directory boundary.
//
// With and With2 bind a composition to a single call: the composed path is
// handed to a callback and must not be retained past it. With2 exists for
// the two-endpoint operations (copy, link, rename, cross-root move) where
// both compositions have to be live at once without sharing state.
package joinpath

import (
	"os"
	"path/filepath"
)

// Join composes base and rel into a single path.
//
// Fast paths return an existing string without allocating:
//   - rel is absolute: rel overrides base (normal path-join semantics)
//   - base is empty or ".": rel stands alone
//   - rel is empty or ".": base stands alone
//
// Otherwise the result is built in a single exactly-sized allocation.
// Join never fails; it has no notion of the path existing.
func Join(base, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	if base == "" || base == "." {
		return rel
	}
	if rel == "" || rel == "." {
		return base
	}
	if os.IsPathSeparator(base[len(base)-1]) {
		return base + rel
	}
	return base + string(filepath.Separator) + rel
}

// With composes base and rel and hands the result to fn for the duration of
// the call. The composed path must not be retained after fn returns; callers
// that need a path with independent lifetime should use Join.
func With(base, rel string, fn func(path string) error) error {
	return fn(Join(base, rel))
}

// With2 composes two independent base/rel pairs for operations that need a
// source and a destination at the same time, possibly rooted at two
// different bases. Neither composed path may be retained after fn returns.
func With2(base1, rel1, base2, rel2 string, fn func(p1, p2 string) error) error {
	return fn(Join(base1, rel1), Join(base2, rel2))
}
