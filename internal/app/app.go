// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher with injected dependencies.
package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/appystack/create-appystack/internal/installer"
	"github.com/appystack/create-appystack/internal/interaction"
	"github.com/appystack/create-appystack/internal/version"
)

// Dependencies holds all injected dependencies required for command
// execution. It enables swapping the prompter, template source, installer,
// and clock in tests.
type Dependencies struct {
	WorkDir   string
	Out       io.Writer
	Err       io.Writer            // fatal diagnostics; defaults to stderr
	Prompter  interaction.Prompter // nil means non-interactive
	Template  fs.FS                // template tree root
	Installer func(manager string) installer.Installer
	ProbePort func(port int) bool
	Now       func() time.Time
}

// CLI defines the command-line interface structure parsed by Kong. The
// create flow is the default command, so `create-appystack my-app` works
// without naming a subcommand.
type CLI struct {
	Create  CreateCmd  `cmd:"" default:"withargs" help:"Scaffold a new project"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type CreateCmd struct {
	Name        string `arg:"" optional:"" help:"Project name (lowercase letters, digits, hyphens)"`
	Scope       string `help:"Package scope for the workspace packages, e.g. @acme"`
	ClientPort  int    `name:"client-port" help:"Vite dev server port"`
	ServerPort  int    `name:"server-port" help:"Express server port"`
	Description string `help:"Project description"`
	PM          string `name:"pm" help:"Package manager (npm|pnpm|yarn|bun)"`
	Template    string `short:"t" help:"Scaffold from a template directory instead of the built-in template"`
	SkipInstall bool   `name:"skip-install" help:"Skip dependency installation"`
	EnvFile     string `name:"env-file" help:"Path to .env file with APPYSTACK_* defaults"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// arguments, loads environment defaults, and dispatches to the requested
// command. Returns 0 on success or user cancellation, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Installer == nil {
		deps.Installer = func(manager string) installer.Installer {
			return installer.ExecInstaller{Manager: manager}
		}
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(errOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(errOut, err)
	}

	loadEnvFile(cli.Create.EnvFile, out)

	command := ctx.Command()
	switch {
	case command == "version":
		fmt.Fprintln(out, version.GetVersion())
		return 0
	case command == "create" || strings.HasPrefix(command, "create "):
		return runCreate(cli.Create, deps, out, errOut)
	}

	fmt.Fprintln(errOut, "unknown command")
	return 1
}

// loadEnvFile loads APPYSTACK_* defaults from the given env file, or from
// ./.env when present.
func loadEnvFile(path string, out io.Writer) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", path, err)
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}
