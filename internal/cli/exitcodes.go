package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors or any failure that doesn't fit below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, unknown lanes.
	ExitUsage = 2

	// ExitNotFound indicates the card id is not on the board.
	ExitNotFound = 3

	// ExitValidation indicates input failed validation, e.g. a blank title.
	ExitValidation = 5
)
