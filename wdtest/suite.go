// Package wdtest provides a conformance test suite for validating working
// directory implementations against the workdir.WorkingDir contracts.
//
// The suite verifies the operation contracts, not platform-specific
// behavior: errors are matched against the io/fs sentinels with errors.Is
// rather than compared to concrete platform error values.
//
// Example usage:
//
//	func TestDir(t *testing.T) {
//	    wdtest.TestSuite(t, func() workdir.WorkingDir {
//	        return workdir.New(t.TempDir())
//	    })
//	}
package wdtest

import (
	"testing"

	"github.com/jmgilman/go/workdir"
)

// Factory returns a working directory rooted at a fresh, empty directory
// that already exists on disk. Each call must return an independent root;
// the suite creates and destroys entries beneath it.
type Factory func() workdir.WorkingDir

// TestSuite runs all conformance tests against working directories produced
// by newRoot.
func TestSuite(t *testing.T, newRoot Factory) {
	t.Run("ReadOps", func(t *testing.T) {
		TestReadOps(t, newRoot)
	})
	t.Run("WriteOps", func(t *testing.T) {
		TestWriteOps(t, newRoot)
	})
	t.Run("ManageOps", func(t *testing.T) {
		TestManageOps(t, newRoot)
	})
	t.Run("MoveTo", func(t *testing.T) {
		TestMoveTo(t, newRoot)
	})
}
