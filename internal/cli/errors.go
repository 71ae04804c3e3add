package cli

import (
	"errors"

	"github.com/thenoetrevino/lanes/internal/models"
)

// ErrAmbiguousID is returned when an id prefix matches more than one card
var ErrAmbiguousID = errors.New("id prefix matches more than one card")

// CommandError carries the process exit code for a failed command
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Classify maps a board error to its exit code and a stable code for JSON output
func Classify(err error) (exit int, code string) {
	switch {
	case errors.Is(err, models.ErrCardNotFound):
		return ExitNotFound, "CARD_NOT_FOUND"
	case errors.Is(err, models.ErrUnknownLane):
		return ExitUsage, "UNKNOWN_LANE"
	case errors.Is(err, ErrAmbiguousID):
		return ExitUsage, "AMBIGUOUS_ID"
	case errors.Is(err, models.ErrEmptyTitle):
		return ExitValidation, "EMPTY_TITLE"
	default:
		return ExitError, "ERROR"
	}
}

// ExitCode returns the process exit code for an error returned by Execute
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
