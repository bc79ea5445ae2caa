package handle

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrCapsuleName reports that a capsule was opened under a different
	// name than it was created with.
	ErrCapsuleName = errors.New("weaver/handle: capsule name mismatch")

	// ErrCapsuleEmpty reports an attempt to open a capsule that holds no pointer.
	ErrCapsuleEmpty = errors.New("weaver/handle: empty capsule")

	// ErrShortCapsule reports a truncated capsule encoding.
	ErrShortCapsule = errors.New("weaver/handle: short capsule encoding")
)

const capsuleHeaderLen = 2

// Capsule pairs a Handle with the name of the type it points to, so that a
// host environment can carry it as an inert value and hand it back.
type Capsule struct {
	Name   string
	Handle Handle
}

// NewCapsule returns a capsule for h tagged with name.
func NewCapsule(h Handle, name string) Capsule {
	return Capsule{Name: name, Handle: h}
}

// Open returns the wrapped Handle when name matches the capsule's name.
func (c Capsule) Open(name string) (Handle, error) {
	if c.Name != name {
		return 0, fmt.Errorf("%w: have %q, want %q", ErrCapsuleName, c.Name, name)
	}
	if c.Handle.IsNone() {
		return 0, ErrCapsuleEmpty
	}
	return c.Handle, nil
}

// MarshalBinary encodes the capsule as a big-endian name length, the name,
// and the 8 raw bytes of the handle.
func (c Capsule) MarshalBinary() ([]byte, error) {
	if len(c.Name) > math.MaxUint16 {
		return nil, fmt.Errorf("weaver/handle: capsule name too long (%d bytes)", len(c.Name))
	}
	buf := make([]byte, capsuleHeaderLen+len(c.Name)+8)
	binary.BigEndian.PutUint16(buf[0:2], uint16(len(c.Name)))
	copy(buf[2:], c.Name)
	binary.BigEndian.PutUint64(buf[2+len(c.Name):], c.Handle.ToInteger())
	return buf, nil
}

// UnmarshalBinary decodes the format written by MarshalBinary.
func (c *Capsule) UnmarshalBinary(data []byte) error {
	if len(data) < capsuleHeaderLen {
		return ErrShortCapsule
	}
	n := int(binary.BigEndian.Uint16(data[0:2]))
	if len(data) != capsuleHeaderLen+n+8 {
		return ErrShortCapsule
	}
	c.Name = string(data[2 : 2+n])
	c.Handle = FromInteger(binary.BigEndian.Uint64(data[2+n:]))
	return nil
}
