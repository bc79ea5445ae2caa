package guard

import (
	"runtime"
	"sync/atomic"
)

// Guard holds a pending action that runs at most once.
//
// The zero value and the nil *Guard are valid, already-fired guards.
type Guard struct {
	action atomic.Pointer[func()]
}

// New returns a guard that will run action on its first Call. A nil action
// yields an inert guard.
func New(action func()) *Guard {
	g := &Guard{}
	if action != nil {
		g.action.Store(&action)
	}
	return g
}

// Call runs the pending action and clears it. Concurrent and repeated calls
// are safe; exactly one of them runs the action.
func (g *Guard) Call() {
	if g == nil {
		return
	}
	if fn := g.action.Swap(nil); fn != nil {
		(*fn)()
	}
}

// Fired reports whether the action has already run (or there never was one).
func (g *Guard) Fired() bool {
	return g == nil || g.action.Load() == nil
}

// Dismiss clears the pending action without running it and reports whether
// there was one. Ownership of the cleanup moves to the caller.
func (g *Guard) Dismiss() bool {
	if g == nil {
		return false
	}
	return g.action.Swap(nil) != nil
}

// Chain returns a guard that fires each of guards in order. Guards that have
// already fired are skipped, and nil entries are ignored.
func Chain(guards ...*Guard) *Guard {
	steps := append([]*Guard(nil), guards...)
	return New(func() {
		for _, g := range steps {
			g.Call()
		}
	})
}

// AttachTo fires g after owner becomes unreachable. The guard must not
// reference owner, otherwise owner is kept alive and g never fires from
// here. An explicit g.Call before that point still wins and the later
// automatic invocation becomes a no-op.
func AttachTo[T any](owner *T, g *Guard) {
	if owner == nil || g == nil {
		return
	}
	runtime.AddCleanup(owner, func(g *Guard) { g.Call() }, g)
}
