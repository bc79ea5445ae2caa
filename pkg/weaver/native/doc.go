// Package native exposes bridge closures to native code as a real C
// function pointer plus a context value.
//
// ExportInt64 and ExportBytes install a closure in a bridge.Group and
// register its route with the cgo trampolines in internal/bindings. The
// returned Callback carries the pointer and context a native consumer
// stores; Release forgets both, boundary first and bridge slot second.
//
// Without cgo (or on Windows) every export returns ErrNotBuilt.
package native
