package cli

import (
	"context"
	"errors"
)

// ErrNoLadder is returned by the ladder command when the two words are not
// connected. The result has already been printed when it is returned.
var ErrNoLadder = errors.New("no ladder")

// Process exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitNoLadder    = 2
	ExitInterrupted = 130 // standard shell convention for SIGINT
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, ErrNoLadder):
		return ExitNoLadder
	default:
		return ExitError
	}
}
