package depsort

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCycle is matched by every *CycleError.
	ErrCycle = errors.New("weaver/depsort: dependency cycle")

	// ErrMissingDependency is matched by every *MissingDependencyError.
	ErrMissingDependency = errors.New("weaver/depsort: missing dependency")

	// ErrDuplicateEntity reports two units sharing one name.
	ErrDuplicateEntity = errors.New("weaver/depsort: duplicate entity name")
)

// CycleError names the units on one dependency cycle. Cycle starts and ends
// with the same name; each element depends on the next.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCycle, strings.Join(e.Cycle, " -> "))
}

func (e *CycleError) Is(target error) bool { return target == ErrCycle }

// MissingDependencyError reports a dependency that is not part of the input.
type MissingDependencyError struct {
	Dependent string
	Missing   string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%v: %q depends on unknown %q", ErrMissingDependency, e.Dependent, e.Missing)
}

func (e *MissingDependencyError) Is(target error) bool { return target == ErrMissingDependency }
