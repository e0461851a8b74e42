package cell

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// The Duplicable bound on Get is a compile-time property, so it is checked by
// building the programs under testdata/ instead of by a runtime assertion.
func TestGetCompileBound(t *testing.T) {
	tests := []struct {
		name      string
		pkgLoc    string
		wantBuild bool
		wantInErr string
	}{
		{
			name:      "Error: Get on a non-duplicable element type",
			pkgLoc:    "testdata/getnocopy",
			wantBuild: false,
			wantInErr: "Duplicable",
		},
		{
			name:      "Good: Get on a duplicable element type",
			pkgLoc:    "testdata/getduplicable",
			wantBuild: true,
		},
	}

	goexec, err := exec.LookPath("go")
	if err != nil {
		t.Skipf("cannot find go on path: %s", err)
	}

	for _, test := range tests {
		abs, err := filepath.Abs(test.pkgLoc)
		if err != nil {
			panic(err)
		}

		cmd := exec.Cmd{
			Path: goexec,
			Dir:  abs,
			Args: []string{"go", "build", "-o", filepath.Join(t.TempDir(), "out")},
			Env:  os.Environ(),
		}

		out, err := cmd.CombinedOutput()
		if test.wantBuild {
			if err != nil {
				t.Errorf("TestGetCompileBound(%s): got build err == %s, want err == nil, output:\n%s", test.name, err, string(out))
			}
			continue
		}
		if err == nil {
			t.Errorf("TestGetCompileBound(%s): build succeeded, want a compile error", test.name)
			continue
		}
		if !strings.Contains(string(out), test.wantInErr) {
			t.Errorf("TestGetCompileBound(%s): compile error does not mention %q, output:\n%s", test.name, test.wantInErr, string(out))
		}
	}
}
