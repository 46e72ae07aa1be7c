package cli

import "fmt"

// Exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitConflict = 2
	ExitUsage    = 64
)

// ExitError signals a non-zero exit code without calling os.Exit in RunE
// handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
