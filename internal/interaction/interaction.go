// Where: internal/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction so the create pipeline stays free of TUI details.
package interaction

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts a prompt. The caller treats
// it as a clean termination, not a failure.
var ErrCancelled = errors.New("cancelled by user")

// Prompter defines the interface for interactive user input and selection.
type Prompter interface {
	Input(title, initial string, validate func(string) error) (string, error)
	Select(title string, options []string) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
