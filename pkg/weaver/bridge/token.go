package bridge

import "fmt"

// GroupID identifies one callback signature.
type GroupID uint16

// SlotID identifies one installation within a group.
type SlotID uint64

const slotBits = 48

// MaxSlot is the largest SlotID a Token can carry.
const MaxSlot SlotID = 1<<slotBits - 1

// Token is the value a trampoline receives to find its closure. It packs the
// group into the top 16 bits and the slot into the low 48.
type Token uint64

// MakeToken packs g and s. Slots above MaxSlot are truncated; the bridge
// never issues them.
func MakeToken(g GroupID, s SlotID) Token {
	return Token(uint64(g)<<slotBits | uint64(s&MaxSlot))
}

// Group returns the group packed in t.
func (t Token) Group() GroupID { return GroupID(uint64(t) >> slotBits) }

// Slot returns the slot packed in t.
func (t Token) Slot() SlotID { return SlotID(uint64(t)) & MaxSlot }

func (t Token) String() string {
	return fmt.Sprintf("%d/%d", t.Group(), t.Slot())
}
