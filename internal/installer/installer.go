// Where: internal/installer/installer.go
// What: Dependency installation via the chosen package manager.
// Why: Run the install step as a subprocess with streamed output; failure stays non-fatal upstream.
package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Managers lists the supported package managers in prompt order.
var Managers = []string{"npm", "pnpm", "yarn", "bun"}

// DefaultManager is used when nothing was chosen or remembered.
const DefaultManager = "npm"

// Installer runs dependency installation in a scaffolded project directory.
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// ExecInstaller implements Installer using os/exec with inherited
// stdout/stderr, so the package manager's own progress output reaches the
// terminal directly. No deadline is applied; the subprocess runs to
// completion or failure.
type ExecInstaller struct {
	Manager string
}

func (i ExecInstaller) Install(ctx context.Context, dir string) error {
	name, args := InstallCommand(i.Manager)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// IsSupported reports whether manager is one of the supported package
// managers.
func IsSupported(manager string) bool {
	for _, m := range Managers {
		if m == manager {
			return true
		}
	}
	return false
}

// InstallCommand returns the binary and arguments for a manager's install
// command. Unknown managers fall back to the default.
func InstallCommand(manager string) (string, []string) {
	if !IsSupported(manager) {
		manager = DefaultManager
	}
	return manager, []string{"install"}
}

// CommandLine returns the install command as a single shell line, for the
// manual-recovery instructions printed when installation fails.
func CommandLine(manager string) string {
	name, args := InstallCommand(manager)
	return fmt.Sprintf("%s %s", name, strings.Join(args, " "))
}
