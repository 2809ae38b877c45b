// Where: internal/app/collect.go
// What: Build the project configuration from flags, env defaults, and prompts.
// Why: Every value is validated where it enters; prompts re-ask, flags fail fast.
package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/appystack/create-appystack/internal/config"
	"github.com/appystack/create-appystack/internal/installer"
	"github.com/appystack/create-appystack/internal/interaction"
	"github.com/appystack/create-appystack/internal/project"
	"github.com/appystack/create-appystack/internal/scaffold"
)

// Environment variables consulted for prompt defaults, typically provided
// through --env-file.
const (
	EnvScope      = "APPYSTACK_SCOPE"
	EnvClientPort = "APPYSTACK_CLIENT_PORT"
	EnvServerPort = "APPYSTACK_SERVER_PORT"
	EnvPM         = "APPYSTACK_PM"
)

// promptDefaults are suggestions only; each one is still validated when it
// becomes an actual answer.
type promptDefaults struct {
	Scope          string
	ClientPort     int
	ServerPort     int
	PackageManager string
}

// collectDefaults layers remembered config under environment overrides,
// starting from the template's own client port. ServerPort stays zero
// unless a previous run or the environment remembered one; the server-port
// suggestion is otherwise derived from the client port.
func collectDefaults(gcfg config.GlobalConfig) promptDefaults {
	defaults := promptDefaults{
		ClientPort:     scaffold.TemplateClientPort,
		PackageManager: installer.DefaultManager,
	}

	if gcfg.Defaults.Scope != "" {
		defaults.Scope = gcfg.Defaults.Scope
	}
	if gcfg.Defaults.ClientPort != 0 {
		defaults.ClientPort = gcfg.Defaults.ClientPort
	}
	if gcfg.Defaults.ServerPort != 0 {
		defaults.ServerPort = gcfg.Defaults.ServerPort
	}
	if gcfg.Defaults.PackageManager != "" {
		defaults.PackageManager = gcfg.Defaults.PackageManager
	}

	if v := strings.TrimSpace(os.Getenv(EnvScope)); v != "" {
		defaults.Scope = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(EnvClientPort))); err == nil {
		defaults.ClientPort = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(EnvServerPort))); err == nil {
		defaults.ServerPort = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPM)); v != "" {
		defaults.PackageManager = v
	}
	return defaults
}

// collectConfig resolves the six configuration values. Flag values are
// validated fast and fatally; prompted values are validated inside the
// prompt, which re-asks on invalid input. A nil prompter means
// non-interactive mode: every value must come from flags or defaults.
func collectConfig(cmd CreateCmd, defaults promptDefaults, prompter interaction.Prompter) (project.Config, error) {
	cfg := project.Config{}

	name, err := resolveString(cmd.Name, "", project.ValidateName, prompter, "Project name")
	if err != nil {
		return cfg, err
	}
	cfg.Name = name

	scope, err := resolveString(cmd.Scope, defaults.Scope, project.ValidateScope, prompter, "Package scope")
	if err != nil {
		return cfg, err
	}
	cfg.Scope = scope

	clientPort, err := resolvePort(cmd.ClientPort, defaults.ClientPort, prompter, "Client port")
	if err != nil {
		return cfg, err
	}
	cfg.ClientPort = clientPort

	serverPort, err := resolvePort(cmd.ServerPort, serverPortSuggestion(cmd, defaults, clientPort), prompter, "Server port")
	if err != nil {
		return cfg, err
	}
	cfg.ServerPort = serverPort

	description, err := resolveString(cmd.Description, "", project.ValidateDescription, prompter, "Description")
	if err != nil {
		return cfg, err
	}
	cfg.Description = strings.TrimSpace(description)

	manager, err := resolveManager(cmd.PM, defaults.PackageManager, prompter)
	if err != nil {
		return cfg, err
	}
	cfg.PackageManager = manager

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// serverPortSuggestion is client port + 1 (a convenience, not enforced).
// A remembered server port wins only when one actually exists and the
// client port was not pinned by flag.
func serverPortSuggestion(cmd CreateCmd, defaults promptDefaults, clientPort int) int {
	if cmd.ClientPort == 0 && defaults.ServerPort != 0 && defaults.ServerPort != clientPort {
		return defaults.ServerPort
	}
	if err := project.ValidatePort(clientPort + 1); err == nil {
		return clientPort + 1
	}
	return clientPort - 1
}

func resolveString(flag, fallback string, validate func(string) error, prompter interaction.Prompter, title string) (string, error) {
	if flag != "" {
		return flag, validate(flag)
	}
	if prompter == nil {
		if fallback != "" {
			return fallback, validate(fallback)
		}
		return "", fmt.Errorf("%s is required (no terminal for prompts; pass it as a flag)", strings.ToLower(title))
	}
	return prompter.Input(title, fallback, validate)
}

func resolvePort(flag, fallback int, prompter interaction.Prompter, title string) (int, error) {
	if flag != 0 {
		return flag, project.ValidatePort(flag)
	}
	if prompter == nil {
		return fallback, project.ValidatePort(fallback)
	}
	validate := func(value string) error {
		_, err := project.ParsePort(value)
		return err
	}
	answer, err := prompter.Input(title, strconv.Itoa(fallback), validate)
	if err != nil {
		return 0, err
	}
	return project.ParsePort(answer)
}

func resolveManager(flag, fallback string, prompter interaction.Prompter) (string, error) {
	if flag != "" {
		if !installer.IsSupported(flag) {
			return "", fmt.Errorf("unsupported package manager %q (expected one of %s)", flag, strings.Join(installer.Managers, ", "))
		}
		return flag, nil
	}
	if prompter == nil {
		if !installer.IsSupported(fallback) {
			return installer.DefaultManager, nil
		}
		return fallback, nil
	}
	return prompter.Select("Package manager", installer.Managers)
}
