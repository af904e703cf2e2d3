package filter

import (
	"errors"
	"fmt"
)

// Errors for filter scripts.
var (
	// ErrClosed is returned when calling a closed filter.
	ErrClosed = errors.New("filter is closed")

	// ErrNoAccept is returned when a script does not define accept.
	ErrNoAccept = errors.New("script does not define function accept(ch, text)")

	// ErrTimeout is returned when a call runs past the filter timeout.
	ErrTimeout = errors.New("filter call timed out")
)

// ScriptError reports a failure loading or running a filter script.
type ScriptError struct {
	Script string
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("filter %s: %v", e.Script, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
