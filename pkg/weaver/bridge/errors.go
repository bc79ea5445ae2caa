package bridge

import "errors"

var (
	// ErrSlotOccupied reports a Register on a slot that is currently
	// installed.
	ErrSlotOccupied = errors.New("weaver/bridge: slot occupied")

	// ErrSlotExhausted reports that no slot could be obtained: Register ran
	// out of retries, or a group's slot space is used up.
	ErrSlotExhausted = errors.New("weaver/bridge: slot space exhausted")

	// ErrUnknownSlot reports a call through a Token whose slot is not
	// installed.
	ErrUnknownSlot = errors.New("weaver/bridge: unknown slot")

	// ErrNilClosure reports an attempt to install a nil closure.
	ErrNilClosure = errors.New("weaver/bridge: nil closure")

	// ErrSlotRange reports a SlotID above MaxSlot or equal to zero.
	ErrSlotRange = errors.New("weaver/bridge: slot out of range")

	// ErrGroupSignature reports a group opened with a signature that
	// differs from the one it was first opened with.
	ErrGroupSignature = errors.New("weaver/bridge: group signature mismatch")

	// ErrWrongGroup reports a Token from another group.
	ErrWrongGroup = errors.New("weaver/bridge: token belongs to another group")
)
