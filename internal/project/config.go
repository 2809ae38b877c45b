// Where: internal/project/config.go
// What: Project configuration and input validation.
// Why: Collect the scaffolding inputs once and thread them explicitly through each stage.
package project

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Config holds the values collected before scaffolding starts. It is built
// once from flags, environment defaults, and prompts, and never mutated after
// collection.
type Config struct {
	Name           string
	Scope          string
	ClientPort     int
	ServerPort     int
	Description    string
	PackageManager string
}

var (
	nameRe  = regexp.MustCompile(`^[a-z0-9-]+$`)
	scopeRe = regexp.MustCompile(`^@[a-z0-9-]+$`)
)

// ValidateName checks a project name: lowercase letters, digits, and hyphens.
func ValidateName(value string) error {
	if value == "" {
		return fmt.Errorf("project name is required")
	}
	if !nameRe.MatchString(value) {
		return fmt.Errorf("project name %q must contain only lowercase letters, digits, and hyphens", value)
	}
	return nil
}

// ValidateScope checks a package scope: an @ followed by lowercase letters,
// digits, and hyphens (e.g. @acme).
func ValidateScope(value string) error {
	if value == "" {
		return fmt.Errorf("package scope is required")
	}
	if !scopeRe.MatchString(value) {
		return fmt.Errorf("package scope %q must start with @ followed by lowercase letters, digits, and hyphens", value)
	}
	return nil
}

// ParsePort parses a port entered as text and checks its range.
func ParsePort(value string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("port %q is not a number", value)
	}
	if err := ValidatePort(port); err != nil {
		return 0, err
	}
	return port, nil
}

// ValidatePort checks that a port is in [1, 65535].
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d must be between 1 and 65535", port)
	}
	return nil
}

// ValidateDescription checks that a description is non-empty after trimming.
func ValidateDescription(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("description must not be empty")
	}
	return nil
}

// Validate checks every field of a fully collected configuration.
func (c Config) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if err := ValidateScope(c.Scope); err != nil {
		return err
	}
	if err := ValidatePort(c.ClientPort); err != nil {
		return fmt.Errorf("client %w", err)
	}
	if err := ValidatePort(c.ServerPort); err != nil {
		return fmt.Errorf("server %w", err)
	}
	if err := ValidateDescription(c.Description); err != nil {
		return err
	}
	return nil
}
