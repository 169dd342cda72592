package workdir_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/workdir"
)

// TestReexportedErrorsMatchStdlib verifies the re-exported sentinels match
// io/fs, so callers can match either spelling with errors.Is.
func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		stdlibErr error
	}{
		{"ErrNotExist", workdir.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", workdir.ErrExist, fs.ErrExist},
		{"ErrPermission", workdir.ErrPermission, fs.ErrPermission},
		{"ErrClosed", workdir.ErrClosed, fs.ErrClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.stdlibErr) || !errors.Is(tt.stdlibErr, tt.err) {
				t.Errorf("%s does not match stdlib: got %v, want %v",
					tt.name, tt.err, tt.stdlibErr)
			}
		})
	}
}

// TestOperationErrorsMatchSentinels verifies operations surface platform
// errors that match the sentinels unchanged.
func TestOperationErrorsMatchSentinels(t *testing.T) {
	d := workdir.New(t.TempDir())

	if _, err := d.ReadFile("missing.txt"); !errors.Is(err, workdir.ErrNotExist) {
		t.Errorf("ReadFile(missing.txt): got error %v, want ErrNotExist", err)
	}

	if err := d.Mkdir("dir", 0o755); err != nil {
		t.Fatalf("Mkdir(dir): setup failed: %v", err)
	}
	if err := d.Mkdir("dir", 0o755); !errors.Is(err, workdir.ErrExist) {
		t.Errorf("Mkdir(dir) repeated: got error %v, want ErrExist", err)
	}

	// Errors arrive as *fs.PathError carrying the composed path.
	var pathErr *fs.PathError
	_, err := d.ReadFile("missing.txt")
	if !errors.As(err, &pathErr) {
		t.Errorf("ReadFile(missing.txt): got %T, want *fs.PathError", err)
	}
}
