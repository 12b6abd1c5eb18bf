// Package app provides the pager's application structure and event loop.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the pager should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoInput indicates no input file was given.
	ErrNoInput = errors.New("no input file")

	// ErrNoBackend indicates Run was called before a terminal backend
	// was attached.
	ErrNoBackend = errors.New("no terminal backend attached")
)

// OperationError records a failure during a named operation.
type OperationError struct {
	Op     string // Operation name (e.g. "open", "redraw")
	Target string // Target of the operation (e.g. file path)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
