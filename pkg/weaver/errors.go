package weaver

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTarget indicates Declare was given no declaration target.
	ErrNilTarget = errors.New("weaver: nil declaration target")

	// ErrUnitPanicked indicates a unit's Update panicked. The panic is
	// re-raised after it is recorded.
	ErrUnitPanicked = errors.New("weaver: unit update panicked")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("weaver.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
