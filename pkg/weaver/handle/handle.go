package handle

import "unsafe"

// Handle is an opaque, bit-preserving representation of a native pointer.
// The zero Handle stands for "none".
type Handle uintptr

// Wrap converts p into a Handle. It returns false when p is nil.
//
// p must be native memory (from C, mmap or a foreign runtime). A Handle does
// not keep a Go object alive and the collector may move or free it, so Go
// pointers must never be wrapped.
func Wrap(p unsafe.Pointer) (Handle, bool) {
	if p == nil {
		return 0, false
	}
	return Handle(uintptr(p)), true
}

// Unwrap returns the native pointer carried by h, or nil for the zero
// Handle. No type check is performed.
func (h Handle) Unwrap() unsafe.Pointer {
	if h == 0 {
		return nil
	}
	//nolint:govet // the value originates from a native address; round trip is the point
	return unsafe.Pointer(uintptr(h))
}

// IsNone reports whether h carries no pointer.
func (h Handle) IsNone() bool { return h == 0 }

// ToInteger returns the raw bits of h.
func (h Handle) ToInteger() uint64 { return uint64(h) }

// FromInteger rebuilds a Handle from bits produced by ToInteger.
func FromInteger(v uint64) Handle { return Handle(uintptr(v)) }
