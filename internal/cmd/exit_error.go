package cmd

import "fmt"

// Process exit codes.
const (
	// exitFailure: cleanup failed or was cancelled.
	exitFailure = 1
	// exitWrongMode: invoked in the wrong environment for the requested action.
	exitWrongMode = 2
)

// ExitError signals a specific exit code without forcing os.Exit in RunE
// handlers.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
