package bridge

import (
	"context"
	"fmt"
	"reflect"

	"github.com/weaver-go/weaver/pkg/weaver/guard"
	"github.com/weaver-go/weaver/pkg/weaver/logging"
)

// Func is the fixed signature a trampoline exposes: the Token selects the
// closure, arg is passed through, and the closure's result is returned.
type Func[A, R any] func(tok Token, arg A) R

// Group is the typed view of one group: every closure in it is a func(A) R.
type Group[A, R any] struct {
	b  *Bridge
	id GroupID
}

// NewGroup opens group id on b for closures of type func(A) R. Opening the
// same id again with the same types returns an equivalent Group; opening it
// with other types fails with ErrGroupSignature.
func NewGroup[A, R any](b *Bridge, id GroupID) (*Group[A, R], error) {
	if err := b.bindGroup(id, reflect.TypeFor[func(A) R]()); err != nil {
		return nil, err
	}
	return &Group[A, R]{b: b, id: id}, nil
}

// ID returns the group's identifier.
func (g *Group[A, R]) ID() GroupID { return g.id }

// Install installs fn under a fresh slot.
func (g *Group[A, R]) Install(fn func(A) R) (*Installation[A, R], error) {
	if fn == nil {
		return nil, ErrNilClosure
	}
	tok, s, release, err := g.b.Install(g.id, fn)
	if err != nil {
		return nil, err
	}
	return &Installation[A, R]{group: g, slot: s, token: tok, release: release}, nil
}

// Register installs fn under the caller-chosen slot s.
func (g *Group[A, R]) Register(ctx context.Context, s SlotID, fn func(A) R) (*Installation[A, R], error) {
	if fn == nil {
		return nil, ErrNilClosure
	}
	tok, release, err := g.b.Register(ctx, g.id, s, fn)
	if err != nil {
		return nil, err
	}
	return &Installation[A, R]{group: g, slot: s, token: tok, release: release}, nil
}

// Call dispatches arg to the closure selected by tok. The bridge lock is
// released before the closure runs.
func (g *Group[A, R]) Call(tok Token, arg A) (R, error) {
	var zero R
	if tok.Group() != g.id {
		return zero, fmt.Errorf("%w: %s in group %d", ErrWrongGroup, tok, g.id)
	}
	v, ok := g.b.Lookup(g.id, tok.Slot())
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrUnknownSlot, tok)
	}
	fn, ok := v.(func(A) R)
	if !ok {
		return zero, fmt.Errorf("%w: slot %s holds %T", ErrGroupSignature, tok, v)
	}
	return fn(arg), nil
}

// Trampoline returns the group's stateless dispatcher. Calls through a Token
// that is not installed return the zero R and are logged.
func (g *Group[A, R]) Trampoline() Func[A, R] {
	return func(tok Token, arg A) R {
		r, err := g.Call(tok, arg)
		if err != nil {
			g.b.log.Warn(context.Background(), "bridge dispatch failed",
				logging.KeyGroup, tok.Group(), logging.KeySlot, tok.Slot(), "error", err)
		}
		return r
	}
}

// Installation is one closure installed in a Group.
type Installation[A, R any] struct {
	group   *Group[A, R]
	slot    SlotID
	token   Token
	release *guard.Guard
}

// Token returns the value to pass to the trampoline.
func (in *Installation[A, R]) Token() Token { return in.token }

// Slot returns the installation's slot.
func (in *Installation[A, R]) Slot() SlotID { return in.slot }

// Call invokes the installed closure through the bridge.
func (in *Installation[A, R]) Call(arg A) (R, error) {
	return in.group.Call(in.token, arg)
}

// Release removes the installation. It is idempotent.
func (in *Installation[A, R]) Release() { in.release.Call() }

// Released reports whether Release (or the guard) has run.
func (in *Installation[A, R]) Released() bool { return in.release.Fired() }

// Guard exposes the release guard so it can be chained into an owner's
// teardown or attached to the owner's lifetime with guard.AttachTo.
func (in *Installation[A, R]) Guard() *guard.Guard { return in.release }
