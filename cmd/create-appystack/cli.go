// Where: cmd/create-appystack/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io/fs"
	"os"
	"time"

	"github.com/appystack/create-appystack/assets"
	"github.com/appystack/create-appystack/internal/app"
	"github.com/appystack/create-appystack/internal/installer"
	"github.com/appystack/create-appystack/internal/interaction"
	"github.com/appystack/create-appystack/internal/port"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the CLI.
// The prompter is only wired when stdin is a terminal; otherwise the create
// flow runs non-interactively and every value must come from flags or
// environment defaults.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	template, err := fs.Sub(assets.TemplateFS, "template")
	if err != nil {
		return app.Dependencies{}, err
	}

	deps := app.Dependencies{
		WorkDir:  workDir,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Template: template,
		Installer: func(manager string) installer.Installer {
			return installer.ExecInstaller{Manager: manager}
		},
		ProbePort: port.Available,
		Now:       time.Now,
	}

	if interaction.IsTerminal(os.Stdin) {
		deps.Prompter = interaction.HuhPrompter{}
	}

	return deps, nil
}
