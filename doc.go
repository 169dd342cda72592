// Package workdir provides path-relative filesystem access: every operation
// is expressed relative to a logical working directory rather than the
// process's single global current directory.
//
// Multiple independent working directories can coexist in one process, each
// behaving as if it were its own filesystem root. This enables
// directory-scoped testing, sandboxing, and multi-root resolution such as
// include-path searches (see the includeset package).
//
// # Design Philosophy
//
//   - Thin delegation: every operation composes the base path with the
//     caller's relative path and dispatches to the matching os primitive.
//     Semantics, error values, and platform quirks are the primitive's own.
//   - No error translation: errors surface unchanged as *fs.PathError and
//     match the io/fs sentinels with errors.Is. The only derived behavior is
//     the documented Exists/TryExists pair.
//   - Stdlib compatibility: Dir.FS exposes the root as an io/fs.FS, so a
//     working directory plugs into fs.WalkDir, glob matchers, and anything
//     else that consumes the standard interfaces.
//   - Scoped composition: joins are built per call and consumed by that call
//     (see internal/joinpath); a Dir never caches or rewrites paths.
//
// # Usage Example
//
//	root := workdir.New("my/root")
//
//	if err := root.CreateParents("path/to/file.txt"); err != nil {
//	    return err
//	}
//	if err := root.WriteFile("path/to/file.txt", []byte("hello"), 0o644); err != nil {
//	    return err
//	}
//
//	// The file exists under root, not under the process's own directory.
//	other := workdir.New("some/other/root")
//	if err := root.MoveTo(other, "path/to/file.txt"); err != nil {
//	    return err
//	}
//
// # Concurrency
//
// A Dir is immutable after construction and holds no OS resources, so it is
// safe for concurrent use; each operation is an independent, stateless
// filesystem call. No transactional guarantees span multiple calls: MoveTo
// creates destination parents and then renames as two separate operations,
// and callers needing atomicity between them must impose it externally.
//
// # Related Packages
//
//   - github.com/jmgilman/go/workdir/includeset - multi-root file search
//   - github.com/jmgilman/go/workdir/billy - go-billy interop for go-git
//   - github.com/jmgilman/go/workdir/wdtest - conformance test suite
package workdir
