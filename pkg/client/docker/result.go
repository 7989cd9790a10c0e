package docker

import (
	"fmt"
	"strings"
)

// ResultKind classifies the outcome of a command run in an ephemeral container.
type ResultKind int

const (
	// Succeeded means the command exited with status 0.
	Succeeded ResultKind = iota
	// ExitedNonZero means the container ran but the command failed,
	// for example because the binary is missing from the image.
	ExitedNonZero
	// RuntimeFailure means the daemon could not create, start, wait for or
	// read the container.
	RuntimeFailure
)

func (k ResultKind) String() string {
	switch k {
	case Succeeded:
		return "succeeded"
	case ExitedNonZero:
		return "exited non-zero"
	case RuntimeFailure:
		return "runtime failure"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// CommandResult is the outcome of one ephemeral container run.
type CommandResult struct {
	Kind ResultKind
	// Output is the decoded standard output.
	Output string
	// Stderr is the decoded standard error, kept for diagnostics.
	Stderr string
	// ExitCode is the command exit status. Only meaningful when the
	// container actually ran.
	ExitCode int64
	// Err describes a RuntimeFailure.
	Err error
}

// OK reports whether the command succeeded.
func (r CommandResult) OK() bool {
	return r.Kind == Succeeded
}

// Failure returns a description of a failed result, or nil on success.
func (r CommandResult) Failure() error {
	switch r.Kind {
	case Succeeded:
		return nil
	case ExitedNonZero:
		return fmt.Errorf("%s with exit code %d: %s", r.Kind, r.ExitCode, strings.TrimSpace(r.Stderr))
	default:
		return fmt.Errorf("%s: %w", r.Kind, r.Err)
	}
}
