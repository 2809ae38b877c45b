// Where: internal/app/create.go
// What: The create pipeline: collect, copy, customize, verify, install, summarize.
// Why: One linear flow with two abort points (copy, customize/verify) and one soft-fail point (install).
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/appystack/create-appystack/internal/config"
	"github.com/appystack/create-appystack/internal/installer"
	"github.com/appystack/create-appystack/internal/interaction"
	"github.com/appystack/create-appystack/internal/port"
	"github.com/appystack/create-appystack/internal/project"
	"github.com/appystack/create-appystack/internal/scaffold"
	"github.com/appystack/create-appystack/internal/ui"
)

func runCreate(cmd CreateCmd, deps Dependencies, out, errOut io.Writer) int {
	console := ui.New(out, errOut)

	cfgPath, gcfg := loadGlobalConfig(console)
	defaults := collectDefaults(gcfg)

	cfg, err := collectConfig(cmd, defaults, deps.Prompter)
	if err != nil {
		if errors.Is(err, interaction.ErrCancelled) {
			console.Info("Cancelled. Nothing was created.")
			return 0
		}
		return exitWithError(errOut, err)
	}

	tplFS := deps.Template
	if cmd.Template != "" {
		info, err := os.Stat(cmd.Template)
		if err != nil || !info.IsDir() {
			return exitWithError(errOut, fmt.Errorf("template directory %s not found", cmd.Template))
		}
		tplFS = os.DirFS(cmd.Template)
	}

	target := filepath.Join(deps.WorkDir, cfg.Name)

	console.Header("🧱", "Scaffolding "+cfg.Name)
	console.Item("Directory", target)
	console.Item("Scope", cfg.Scope)
	console.Item("Client port", cfg.ClientPort)
	console.Item("Server port", cfg.ServerPort)

	if err := scaffold.CopyTree(tplFS, target, scaffold.DefaultExclusions); err != nil {
		if errors.Is(err, scaffold.ErrTargetExists) {
			console.Error(fmt.Sprintf("directory %s already exists, pick another name or remove it", target))
			return 1
		}
		console.Error("copy template: " + err.Error())
		return 1
	}

	if err := scaffold.Customize(target, scaffold.PlanFor(cfg)); err != nil {
		console.Error(err.Error())
		return 1
	}

	if err := scaffold.VerifyManifests(target); err != nil {
		scaffold.Cleanup(target)
		console.Error(err.Error())
		return 1
	}

	warnBusyPorts(cfg, deps.ProbePort, console)

	installed := false
	if cmd.SkipInstall {
		console.Info("Skipping dependency installation.")
	} else {
		console.Header("📦", "Installing dependencies with "+cfg.PackageManager)
		if err := deps.Installer(cfg.PackageManager).Install(context.Background(), target); err != nil {
			console.Warn("dependency installation failed: " + err.Error())
			console.ItemPlain("The project was created anyway. Install manually:")
			console.ItemPlain("cd " + cfg.Name + " && " + installer.CommandLine(cfg.PackageManager))
		} else {
			installed = true
		}
	}

	saveGlobalConfig(cfgPath, gcfg, cfg, target, deps, console)

	summary, err := scaffold.RenderSummary(scaffold.SummaryData{
		Name:           cfg.Name,
		Scope:          cfg.Scope,
		ClientPort:     cfg.ClientPort,
		ServerPort:     cfg.ServerPort,
		PackageManager: cfg.PackageManager,
		InstallCommand: installer.CommandLine(cfg.PackageManager),
		Installed:      installed,
	})
	if err != nil {
		console.Success("Project created: " + target)
		return 0
	}
	fmt.Fprintln(out, summary)
	return 0
}

// loadGlobalConfig loads remembered defaults. A broken config file is
// reported and ignored so it can never block scaffolding.
func loadGlobalConfig(console *ui.Console) (string, config.GlobalConfig) {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return "", config.DefaultGlobalConfig()
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		console.Warn("ignoring global config: " + err.Error())
	}
	return path, cfg
}

func warnBusyPorts(cfg project.Config, probe func(int) bool, console *ui.Console) {
	if probe == nil {
		probe = port.Available
	}
	ports := []int{cfg.ClientPort}
	if cfg.ServerPort != cfg.ClientPort {
		ports = append(ports, cfg.ServerPort)
	}
	for _, p := range ports {
		if !probe(p) {
			console.Warn(fmt.Sprintf("port %d is already in use on this machine", p))
		}
	}
}

// saveGlobalConfig records the project and refreshes remembered defaults,
// best effort.
func saveGlobalConfig(path string, gcfg config.GlobalConfig, cfg project.Config, target string, deps Dependencies, console *ui.Console) {
	if path == "" {
		return
	}
	gcfg.RecordProject(cfg.Name, target, config.Defaults{
		Scope:          cfg.Scope,
		ClientPort:     cfg.ClientPort,
		ServerPort:     cfg.ServerPort,
		PackageManager: cfg.PackageManager,
	}, deps.Now())
	if err := config.SaveGlobalConfig(path, gcfg); err != nil {
		console.Warn("could not update " + path + ": " + err.Error())
	}
}
