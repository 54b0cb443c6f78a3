package term

import "errors"

var (
	// ErrUnknownStyle indicates a style name with no registered attribute set.
	ErrUnknownStyle = errors.New("term: unknown style")

	// ErrAlreadyRunning indicates Start was called on a running spinner.
	ErrAlreadyRunning = errors.New("term: spinner already running")
)
