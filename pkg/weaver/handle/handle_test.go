package handle

import (
	"bytes"
	"errors"
	"testing"
	"unsafe"
)

// nativeAddrs look like addresses handed out by a native allocator. They are
// never dereferenced and lie outside the Go heap.
var nativeAddrs = []uintptr{
	0x10000,
	0x7f3a_1c00_2000,
	0x7fff_ffff_f000,
}

func nativePointer(addr uintptr) unsafe.Pointer {
	//nolint:govet // synthetic native address, never dereferenced
	return unsafe.Pointer(addr)
}

func TestWrapUnwrapRoundTrip(t *testing.T) {
	for _, addr := range nativeAddrs {
		p := nativePointer(addr)
		h, ok := Wrap(p)
		if !ok || h.IsNone() {
			t.Fatalf("Wrap(%#x) = %v, %v; want a handle", addr, h, ok)
		}
		if got := h.Unwrap(); got != p {
			t.Fatalf("Unwrap(Wrap(%#x)) = %p, want %p", addr, got, p)
		}
	}
}

func TestWrapNil(t *testing.T) {
	h, ok := Wrap(nil)
	if ok {
		t.Fatalf("Wrap(nil) reported a pointer")
	}
	if !h.IsNone() {
		t.Fatalf("Wrap(nil) = %v, want none", h)
	}
	if h.Unwrap() != nil {
		t.Fatalf("Unwrap of none is not nil")
	}
}

func TestIntegerRoundTripPreservesBits(t *testing.T) {
	for _, addr := range nativeAddrs {
		p := nativePointer(addr)
		h, _ := Wrap(p)

		bits := h.ToInteger()
		if bits != uint64(addr) {
			t.Fatalf("ToInteger = %#x, want %#x", bits, addr)
		}
		if got := FromInteger(bits).Unwrap(); got != p {
			t.Fatalf("FromInteger(%#x).Unwrap() = %p, want %p", bits, got, p)
		}
	}
}

func TestCapsuleOpen(t *testing.T) {
	h, _ := Wrap(nativePointer(nativeAddrs[1]))

	c := NewCapsule(h, "sample.Widget")
	got, err := c.Open("sample.Widget")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got != h {
		t.Fatalf("Open = %v, want %v", got, h)
	}

	if _, err := c.Open("sample.Gadget"); !errors.Is(err, ErrCapsuleName) {
		t.Fatalf("Open with wrong name: %v, want ErrCapsuleName", err)
	}
	if _, err := NewCapsule(0, "sample.Widget").Open("sample.Widget"); !errors.Is(err, ErrCapsuleEmpty) {
		t.Fatalf("Open of empty capsule: %v, want ErrCapsuleEmpty", err)
	}
}

func TestCapsuleBinaryRoundTrip(t *testing.T) {
	p := nativePointer(nativeAddrs[2])
	h, _ := Wrap(p)
	in := NewCapsule(h, "earth::creatures::SweetHome")

	data, err := in.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	wantPrefix := []byte{0x00, byte(len(in.Name))}
	if !bytes.HasPrefix(data, wantPrefix) {
		t.Fatalf("encoding starts %x, want %x", data[:2], wantPrefix)
	}

	var out Capsule
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
	if out.Handle.Unwrap() != p {
		t.Fatalf("decoded pointer %p, want %p", out.Handle.Unwrap(), p)
	}
}

func TestCapsuleUnmarshalRejectsTruncated(t *testing.T) {
	data, err := NewCapsule(FromInteger(0x10000), "x").MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var c Capsule
	if err := c.UnmarshalBinary(data[:1]); !errors.Is(err, ErrShortCapsule) {
		t.Fatalf("1-byte input: %v, want ErrShortCapsule", err)
	}
	if err := c.UnmarshalBinary(data[:len(data)-1]); !errors.Is(err, ErrShortCapsule) {
		t.Fatalf("truncated input: %v, want ErrShortCapsule", err)
	}
}
