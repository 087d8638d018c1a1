// Package cmd implements the presetctl CLI commands and Kong parser setup.
package cmd

import "errors"

// ExitError carries the process exit code a failed command should produce.
// main unwraps it with ExitCode; everything else treats it as a plain error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return "exit"
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExitCode maps an error to a process exit code: 0 for nil, the embedded
// code for an ExitError anywhere in the chain, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) && ee != nil {
		if ee.Code < 0 {
			return 1
		}
		return ee.Code
	}
	return 1
}

// exitPanic is thrown by the kong.Exit hook so Execute can intercept
// help/version exits instead of letting kong call os.Exit.
type exitPanic struct{ code int }
