// Where: internal/interaction/selector.go
// What: Prompter implementation using the huh library.
// Why: Provide validated text input and keyboard selection for the create flow.
package interaction

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, initial string, validate func(string) error) (string, error) {
	input := initial
	field := huh.NewInput().
		Title(title).
		Value(&input)
	if validate != nil {
		field = field.Validate(validate)
	}
	if err := field.Run(); err != nil {
		return "", mapAbort(err)
	}
	return input, nil
}

func (p HuhPrompter) Select(title string, options []string) (string, error) {
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected).
		Run()
	if err != nil {
		return "", mapAbort(err)
	}
	return selected, nil
}

// mapAbort converts huh's abort sentinel into the package-level one so
// callers never depend on the TUI library.
func mapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}
