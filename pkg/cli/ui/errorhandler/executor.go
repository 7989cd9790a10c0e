// Package errorhandler runs cobra commands and turns the text cobra prints on
// failure into the returned error.
package errorhandler

import (
	"bytes"
	"strings"

	"github.com/spf13/cobra"
)

// Executor runs cobra commands with their error stream captured.
type Executor struct{}

// NewExecutor constructs an Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs cmd. On failure it returns a *CommandError carrying cobra's
// normalized error output, such as usage hints for bad arguments, together
// with the original error.
func (e *Executor) Execute(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	originalErrWriter := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(originalErrWriter)

	err := cmd.Execute()
	if err == nil {
		return nil
	}

	return &CommandError{message: Normalize(errBuf.String()), cause: err}
}

// CommandError is a cobra failure with the captured error output.
type CommandError struct {
	message string
	cause   error
}

func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message == "":
		return e.cause.Error()
	case strings.Contains(e.message, e.cause.Error()):
		return e.message
	default:
		return e.message + ": " + e.cause.Error()
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// Normalize trims captured cobra output and drops the "Error: " prefix of its
// first line. Following lines, such as usage hints, are kept.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	first, rest, multiline := strings.Cut(trimmed, "\n")
	first = strings.TrimPrefix(strings.TrimSpace(first), "Error: ")

	if !multiline {
		return first
	}

	return first + "\n" + rest
}
