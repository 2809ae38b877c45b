// Where: internal/scaffold/copier_test.go
// What: Tests for the template tree copier.
// Why: Ensure exclusions are honored and failures leave nothing behind.
package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testTemplate() fstest.MapFS {
	return fstest.MapFS{
		"package.json":                 {Data: []byte(`{"name": "appystack"}`)},
		".env.example":                 {Data: []byte("PORT=5501\n")},
		"client/src/main.tsx":          {Data: []byte("render()\n")},
		"node_modules/left-pad/pad.js": {Data: []byte("module.exports = pad\n")},
		"client/dist/bundle.js":        {Data: []byte("bundled\n")},
		".git/HEAD":                    {Data: []byte("ref: refs/heads/main\n")},
	}
}

func TestCopyTreeAppliesExclusions(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo-app")

	if err := CopyTree(testTemplate(), target, DefaultExclusions); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, rel := range []string{"package.json", ".env.example", "client/src/main.tsx"} {
		if _, err := os.Stat(filepath.Join(target, filepath.FromSlash(rel))); err != nil {
			t.Fatalf("expected %s to be copied: %v", rel, err)
		}
	}
	for _, rel := range []string{"node_modules", "client/dist", ".git"} {
		if _, err := os.Stat(filepath.Join(target, filepath.FromSlash(rel))); !os.IsNotExist(err) {
			t.Fatalf("expected %s to be excluded", rel)
		}
	}
}

func TestCopyTreeRejectsExistingTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo-app")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	marker := filepath.Join(target, "keep.txt")
	if err := os.WriteFile(marker, []byte("keep"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	err := CopyTree(testTemplate(), target, DefaultExclusions)
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("expected ErrTargetExists, got %v", err)
	}
	// The pre-existing directory must be untouched.
	if _, err := os.Stat(marker); err != nil {
		t.Fatalf("expected existing content to survive: %v", err)
	}
}

// failFS injects a read failure for one file while delegating everything
// else to the wrapped filesystem.
type failFS struct {
	fs.FS
	fail string
}

func (f failFS) Open(name string) (fs.File, error) {
	if name == f.fail {
		return nil, errors.New("injected read failure")
	}
	return f.FS.Open(name)
}

func TestCopyTreeCleansUpOnFailure(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo-app")
	src := failFS{FS: testTemplate(), fail: "client/src/main.tsx"}

	err := CopyTree(src, target, DefaultExclusions)
	if err == nil {
		t.Fatalf("expected copy failure")
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Fatalf("expected target to be removed after failure")
	}
}
