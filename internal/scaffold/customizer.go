// Where: internal/scaffold/customizer.go
// What: Apply the substitution plan to a freshly copied target tree.
// Why: Rewrite placeholder literals in place; any failure rolls the whole target back.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Customize applies the plan to the target directory. Entries are grouped by
// file in plan order: each file is read once, all of its replacements are
// applied, and the result is written back. A missing file or a placeholder
// that is not present aborts the run and removes the target directory;
// already customized files are not rolled back individually, the directory
// delete is the rollback.
func Customize(target string, plan []Substitution) error {
	if err := applyPlan(target, plan); err != nil {
		Cleanup(target)
		return err
	}
	return nil
}

func applyPlan(target string, plan []Substitution) error {
	grouped, order := groupByPath(plan)

	for _, rel := range order {
		path := filepath.Join(target, filepath.FromSlash(rel))
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("customize %s: %w", rel, err)
		}

		content := string(data)
		for _, sub := range grouped[rel] {
			if !strings.Contains(content, sub.Old) {
				return fmt.Errorf("customize %s: placeholder %q not found", rel, sub.Old)
			}
			content = strings.ReplaceAll(content, sub.Old, sub.New)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("customize %s: %w", rel, err)
		}
	}
	return nil
}

func groupByPath(plan []Substitution) (map[string][]Substitution, []string) {
	grouped := map[string][]Substitution{}
	var order []string
	for _, sub := range plan {
		if _, seen := grouped[sub.Path]; !seen {
			order = append(order, sub.Path)
		}
		grouped[sub.Path] = append(grouped[sub.Path], sub)
	}
	return grouped, order
}
