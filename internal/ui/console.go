// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emojis, indentation, and structure across the create flow.
package ui

import (
	"fmt"
	"io"
)

// Console provides helper methods for formatted output. Fatal errors go to
// Err so they reach standard error; everything else goes to Out.
type Console struct {
	Out io.Writer
	Err io.Writer
}

// New creates a new Console writing to the provided writers. A nil errOut
// falls back to out.
func New(out, errOut io.Writer) *Console {
	return &Console{Out: out, Err: errOut}
}

// Header prints a section header with an emoji.
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s %s\n", emoji, title)
}

// Item prints a key-value item with indentation.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-18s %v\n", key+":", value)
}

// ItemPlain prints a generic indented line.
func (c *Console) ItemPlain(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", msg)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "✅ %s\n", msg)
}

// Info prints an info message with an arrow.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "➜ %s\n", msg)
}

// Warn prints a non-fatal warning.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "⚠️  %s\n", msg)
}

// Error prints a fatal error message.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.errWriter(), "❌ %s\n", msg)
}

func (c *Console) errWriter() io.Writer {
	if c.Err != nil {
		return c.Err
	}
	return c.Out
}
