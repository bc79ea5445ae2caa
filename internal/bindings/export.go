//go:build cgo && !windows

package bindings

/*
#include <stdint.h>
#include <stddef.h>
*/
import "C"

import "unsafe"

//export weaver_go_int64_trampoline
func weaver_go_int64_trampoline(ctx C.uintptr_t, arg C.int64_t) C.int64_t {
	v, ok := get(ctxHandle(ctx))
	if !ok {
		return 0
	}
	fn, ok := v.(func(int64) int64)
	if !ok {
		return 0
	}
	return C.int64_t(fn(int64(arg)))
}

//export weaver_go_bytes_trampoline
func weaver_go_bytes_trampoline(ctx C.uintptr_t, data *C.uint8_t, n C.size_t) C.int {
	v, ok := get(ctxHandle(ctx))
	if !ok {
		return statusUnknownContext
	}
	fn, ok := v.(func([]byte) error)
	if !ok {
		return statusUnknownContext
	}
	var msg []byte
	if data != nil && n > 0 {
		msg = C.GoBytes(unsafe.Pointer(data), C.int(n))
	}
	if err := fn(msg); err != nil {
		return statusFailed
	}
	return statusOK
}
