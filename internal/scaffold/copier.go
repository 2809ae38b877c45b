// Where: internal/scaffold/copier.go
// What: Template tree copier with directory exclusions.
// Why: Materialize a pristine copy of the template before customization, all-or-nothing.
package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrTargetExists is returned when the target directory already exists. No
// filesystem mutation happens in that case.
var ErrTargetExists = fmt.Errorf("target directory already exists")

// DefaultExclusions lists directory names that are never copied out of a
// template tree. Only relevant for on-disk templates; the embedded template
// never contains them.
var DefaultExclusions = map[string]struct{}{
	"node_modules": {},
	"dist":         {},
	"build":        {},
	"coverage":     {},
	".git":         {},
	".turbo":       {},
	".cache":       {},
}

// CopyTree copies every file and directory from src into target, skipping
// any directory whose name is in exclude. The target must not exist. If any
// copy step fails, the partially written target is removed (best effort) and
// the original error is returned.
func CopyTree(src fs.FS, target string, exclude map[string]struct{}) error {
	if _, err := os.Lstat(target); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, target)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat target: %w", err)
	}

	if err := copyAll(src, target, exclude); err != nil {
		Cleanup(target)
		return err
	}
	return nil
}

func copyAll(src fs.FS, target string, exclude map[string]struct{}) error {
	return fs.WalkDir(src, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if _, skip := exclude[entry.Name()]; skip && path != "." {
				return fs.SkipDir
			}
			return os.MkdirAll(filepath.Join(target, filepath.FromSlash(path)), 0o755)
		}

		data, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		dest := filepath.Join(target, filepath.FromSlash(path))
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}
		return nil
	})
}

// Cleanup removes a partially created target directory. Failure to clean up
// is deliberately swallowed: the original error is the one worth reporting.
func Cleanup(target string) {
	_ = os.RemoveAll(target)
}
