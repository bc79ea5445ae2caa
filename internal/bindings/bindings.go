//go:build cgo && !windows

package bindings

/*
#include <stdint.h>
#include <stddef.h>

typedef int64_t (*weaver_int64_cb)(uintptr_t ctx, int64_t arg);
typedef int (*weaver_bytes_cb)(uintptr_t ctx, uint8_t* data, size_t n);

extern int64_t weaver_go_int64_trampoline(uintptr_t, int64_t);
extern int weaver_go_bytes_trampoline(uintptr_t, uint8_t*, size_t);

static weaver_int64_cb weaver_int64_trampoline(void) {
	return weaver_go_int64_trampoline;
}

static weaver_bytes_cb weaver_bytes_trampoline(void) {
	return weaver_go_bytes_trampoline;
}

// Native-side invocation of a callback pointer, the way a consumer library
// would call it.
static int64_t weaver_invoke_int64(weaver_int64_cb fn, uintptr_t ctx, int64_t arg) {
	return fn(ctx, arg);
}

static int weaver_invoke_bytes(weaver_bytes_cb fn, uintptr_t ctx, uint8_t* data, size_t n) {
	return fn(ctx, data, n);
}
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/weaver-go/weaver/pkg/weaver/handle"
)

// ctxHandle is the value C receives as the callback context.
type ctxHandle uintptr

var (
	mu   sync.Mutex
	next ctxHandle = 1
	reg            = map[ctxHandle]any{}
)

// put registers a Go value and returns the context value handed to C.
func put(v any) ctxHandle {
	mu.Lock()
	defer mu.Unlock()
	h := next
	next++
	reg[h] = v
	return h
}

// get retrieves a registered value. The lock is released before the caller
// invokes anything it finds.
func get(h ctxHandle) (any, bool) {
	mu.Lock()
	v, ok := reg[h]
	mu.Unlock()
	return v, ok
}

func del(h ctxHandle) {
	mu.Lock()
	delete(reg, h)
	mu.Unlock()
}

const (
	statusOK             = 0
	statusFailed         = 1
	statusUnknownContext = 2
)

// NewInt64Callback registers fn and returns the native function pointer of
// signature int64_t (*)(uintptr_t, int64_t) together with the context value
// that selects fn.
func NewInt64Callback(fn func(int64) int64) (handle.Handle, uintptr, error) {
	if fn == nil {
		return 0, 0, ErrNilCallback
	}
	fp, ok := handle.Wrap(unsafe.Pointer(C.weaver_int64_trampoline()))
	if !ok {
		return 0, 0, ErrNotBuilt
	}
	return fp, uintptr(put(fn)), nil
}

// NewBytesCallback registers fn and returns the native function pointer of
// signature int (*)(uintptr_t, uint8_t*, size_t) together with its context.
func NewBytesCallback(fn func([]byte) error) (handle.Handle, uintptr, error) {
	if fn == nil {
		return 0, 0, ErrNilCallback
	}
	fp, ok := handle.Wrap(unsafe.Pointer(C.weaver_bytes_trampoline()))
	if !ok {
		return 0, 0, ErrNotBuilt
	}
	return fp, uintptr(put(fn)), nil
}

// FreeCallback forgets the context. Native code must not call through it
// afterwards.
func FreeCallback(ctx uintptr) {
	if ctx != 0 {
		del(ctxHandle(ctx))
	}
}

// InvokeInt64 calls fp from C with ctx and arg.
func InvokeInt64(fp handle.Handle, ctx uintptr, arg int64) (int64, error) {
	if fp.IsNone() {
		return 0, ErrNilCallback
	}
	cb := C.weaver_int64_cb(fp.Unwrap())
	return int64(C.weaver_invoke_int64(cb, C.uintptr_t(ctx), C.int64_t(arg))), nil
}

// InvokeBytes calls fp from C with ctx and data.
func InvokeBytes(fp handle.Handle, ctx uintptr, data []byte) error {
	if fp.IsNone() {
		return ErrNilCallback
	}
	cb := C.weaver_bytes_cb(fp.Unwrap())
	var p *C.uint8_t
	if len(data) > 0 {
		p = (*C.uint8_t)(unsafe.Pointer(&data[0]))
	}
	switch rc := C.weaver_invoke_bytes(cb, C.uintptr_t(ctx), p, C.size_t(len(data))); rc {
	case statusOK:
		return nil
	case statusUnknownContext:
		return ErrUnknownContext
	default:
		return ErrCallbackFailed
	}
}

// Live returns the number of registered callback contexts.
func Live() int {
	mu.Lock()
	defer mu.Unlock()
	return len(reg)
}
