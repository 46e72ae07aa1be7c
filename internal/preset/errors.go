package preset

import "errors"

// Errors for preset execution.
var (
	// ErrRunnerClosed is returned when running on a closed runner.
	ErrRunnerClosed = errors.New("preset runner is closed")

	// ErrTimeout is returned when a preset exceeds its time budget.
	ErrTimeout = errors.New("preset execution timeout")
)
