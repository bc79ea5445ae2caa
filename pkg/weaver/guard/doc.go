// Package guard provides a deferred, idempotent, single-shot cleanup action.
//
// A Guard wraps one action. Calling it runs the action at most once; every
// later call is a no-op. Guards are the way the rest of weaver ties teardown
// to a lexical scope or to an object's lifetime:
//
//	g := guard.New(func() { reg.Release(group, slot) })
//	defer g.Call()
//
// Several guards can be composed with Chain so that a single owner holds all
// of its teardown steps, fired in a fixed order. AttachTo fires a guard once
// its owner becomes unreachable, for owners whose lifetime is not lexical.
package guard
