// Package bridge lets a closure be called through a fixed-signature,
// stateless function.
//
// Some consumers accept only a bare function as a callback: no captured
// state, just a signature. Bindings still need to hand them closures. The
// Bridge stores closures under a (group, slot) key and issues a Token that
// encodes the key; a trampoline of the consumer's exact signature receives
// the Token alongside the call arguments, looks the closure up, and calls it.
//
// A group is one callback signature (one call-site shape) shared by every
// installation of that shape. A slot is one installation inside a group.
//
//	b := bridge.New()
//	progress, _ := bridge.NewGroup[int64, int64](b, 1)
//
//	inst, _ := progress.Install(func(done int64) int64 { return total - done })
//	defer inst.Release()
//
//	tramp := progress.Trampoline() // func(bridge.Token, int64) int64, no state
//	consumer(tramp, inst.Token())
//
// # Concurrency
//
// One mutex guards the slot map and is held only around map access. It is
// never held while a closure runs or while Register backs off, so a closure
// may itself install or release slots, and a slow closure does not block
// unrelated slots. Installation becomes visible to callers once Install or
// Register returns.
//
// Releasing a slot does not wait for calls already in flight. The owner must
// make sure nothing calls through a Token once its slot is released.
//
// # Slot allocation
//
// Install picks the slot from a per-group counter and never collides.
// Register accepts a caller-chosen slot and fails with ErrSlotOccupied when
// it is taken; WithRetry turns that into a bounded back-off that ends in
// ErrSlotExhausted.
package bridge
