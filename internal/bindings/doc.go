// Package bindings is the only cgo package in weaver.
//
// It exports one Go trampoline per supported native callback signature and
// hands out the C function pointer of each together with a context value.
// A native consumer stores both and calls the pointer with the context; the
// trampoline finds the registered Go function by context and calls it after
// dropping the table lock.
//
// Supported signatures:
//
//	int64_t (*)(uintptr_t ctx, int64_t arg)
//	int     (*)(uintptr_t ctx, uint8_t* data, size_t n)   // 0 ok, 1 failed, 2 unknown ctx
//
// The context table is process-wide because a C function pointer cannot
// carry any other state. Contexts come from a counter and are never reused
// while registered.
//
// Non-cgo and Windows builds get stubs that return ErrNotBuilt.
package bindings
