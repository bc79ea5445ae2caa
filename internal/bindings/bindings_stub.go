//go:build !cgo || windows

package bindings

import "github.com/weaver-go/weaver/pkg/weaver/handle"

// Stub implementations for non-cgo builds or Windows. They compile but
// report ErrNotBuilt.

func NewInt64Callback(func(int64) int64) (handle.Handle, uintptr, error) {
	return 0, 0, ErrNotBuilt
}

func NewBytesCallback(func([]byte) error) (handle.Handle, uintptr, error) {
	return 0, 0, ErrNotBuilt
}

func FreeCallback(uintptr) {}

func InvokeInt64(handle.Handle, uintptr, int64) (int64, error) {
	return 0, ErrNotBuilt
}

func InvokeBytes(handle.Handle, uintptr, []byte) error {
	return ErrNotBuilt
}

func Live() int { return 0 }
