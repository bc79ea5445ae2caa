// Package handle is the boundary where native addresses become inert values.
//
// A Handle carries the bit pattern of a native pointer as a tagged integer.
// It has no ownership semantics: dropping a Handle never frees what it points
// to, and nothing here keeps the pointee alive. Code outside this package
// passes Handles around and never sees an unsafe.Pointer; converting back is
// an explicit Unwrap whose type correctness is the caller's problem.
//
// Two round trips are supported and both preserve the exact bits:
//
//	h, ok := handle.Wrap(p)                 // ok == false for a nil p
//	p2 := handle.FromInteger(h.ToInteger()).Unwrap()
//
//	c := handle.NewCapsule(h, "sample.Widget")
//	h2, err := c.Open("sample.Widget")
//
// Apart from internal/bindings, this is the only package allowed to import
// unsafe; internalcheck enforces that.
package handle
