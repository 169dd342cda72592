// Package includeset resolves relative file names against an ordered set of
// working directory roots, the way a compiler resolves a header against its
// include path.
//
// A Set holds roots in priority order: Find returns the first hit, so
// earlier roots shadow later ones. Glob searches every root with doublestar
// patterns ("**" crosses directory boundaries).
package includeset

import (
	"io/fs"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jmgilman/go/workdir"
)

// Root is the subset of the working directory surface a search needs.
// *workdir.Dir implements it.
type Root interface {
	// Contains reports whether name exists under the root.
	Contains(name string) bool

	// Join returns the root's base path joined with name.
	Join(name string) string

	// FS returns an io/fs view of the root, used for pattern searches.
	FS() fs.FS
}

// Set is an ordered list of include roots. Earlier roots take precedence.
type Set []Root

// New builds a Set from base paths, keeping their order.
func New(paths ...string) Set {
	s := make(Set, len(paths))
	for i, p := range paths {
		s[i] = workdir.New(p)
	}
	return s
}

// Find returns the full path of name under the first root that contains it.
// The boolean reports whether any root matched.
func (s Set) Find(name string) (string, bool) {
	for _, root := range s {
		if root.Contains(name) {
			return root.Join(name), true
		}
	}
	return "", false
}

// FindAll returns the full path of name under every root that contains it,
// in set order. Shadowed copies of the same relative name all appear.
func (s Set) FindAll(name string) []string {
	var paths []string
	for _, root := range s {
		if root.Contains(name) {
			paths = append(paths, root.Join(name))
		}
	}
	return paths
}

// Glob returns the full paths of every entry matching pattern under every
// root, in set order. Patterns use doublestar syntax; symbolic links are
// not followed during traversal. Roots that do not exist contribute no
// matches. The only error is a malformed pattern.
func (s Set) Glob(pattern string) ([]string, error) {
	var matches []string
	for _, root := range s {
		rel, err := doublestar.Glob(root.FS(), pattern, doublestar.WithNoFollow())
		if err != nil {
			return nil, err
		}
		for _, m := range rel {
			matches = append(matches, root.Join(m))
		}
	}
	return matches, nil
}
