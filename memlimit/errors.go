package memlimit

import (
	"errors"
	"fmt"
)

// ErrResourceExceeded indicates that sampled memory usage went over the
// configured ceiling while the work was running.
var ErrResourceExceeded = errors.New("memlimit: resource limit exceeded")

// LimitError reports a ceiling breach with the observed usage sample.
type LimitError struct {
	// Limit is the configured ceiling in bytes.
	Limit int64
	// Observed is the usage sample that triggered the breach.
	Observed uint64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("memlimit: resource limit exceeded: observed %d bytes against a %d byte ceiling", e.Observed, e.Limit)
}

// Unwrap lets errors.Is match ErrResourceExceeded.
func (e *LimitError) Unwrap() error {
	return ErrResourceExceeded
}
