package bindings

import "errors"

var (
	// ErrNotBuilt reports that the native trampolines were not compiled into
	// the current binary (cgo disabled, or Windows).
	ErrNotBuilt = errors.New("weaver/internal/bindings: native trampolines not built")

	// ErrNilCallback reports a nil Go callback or a nil function pointer.
	ErrNilCallback = errors.New("weaver/internal/bindings: nil callback")

	// ErrUnknownContext reports a native call with a context that is not
	// registered.
	ErrUnknownContext = errors.New("weaver/internal/bindings: unknown callback context")

	// ErrCallbackFailed reports that the Go callback returned an error.
	ErrCallbackFailed = errors.New("weaver/internal/bindings: callback failed")
)
