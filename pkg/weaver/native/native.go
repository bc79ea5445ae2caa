package native

import (
	"errors"

	"github.com/weaver-go/weaver/internal/bindings"
	"github.com/weaver-go/weaver/pkg/weaver/bridge"
	"github.com/weaver-go/weaver/pkg/weaver/guard"
	"github.com/weaver-go/weaver/pkg/weaver/handle"
)

var (
	// ErrNotBuilt reports a binary built without the native trampolines.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrCallbackFailed reports that a bytes callback returned an error to
	// the native caller.
	ErrCallbackFailed = bindings.ErrCallbackFailed

	// ErrReleased reports an Invoke on a released Callback.
	ErrReleased = errors.New("weaver/native: callback released")
)

type kind uint8

const (
	kindInt64 kind = iota + 1
	kindBytes
)

// Callback is a closure reachable from native code.
type Callback struct {
	kind    kind
	fn      handle.Handle
	ctx     uintptr
	token   bridge.Token
	release *guard.Guard
}

// ExportInt64 installs fn in g and returns its int64_t (*)(uintptr_t, int64_t)
// callback.
func ExportInt64(g *bridge.Group[int64, int64], fn func(int64) int64) (*Callback, error) {
	if fn == nil {
		return nil, bridge.ErrNilClosure
	}
	inst, err := g.Install(fn)
	if err != nil {
		return nil, err
	}
	tramp, tok := g.Trampoline(), inst.Token()
	fp, ctx, err := bindings.NewInt64Callback(func(arg int64) int64 {
		return tramp(tok, arg)
	})
	if err != nil {
		inst.Release()
		return nil, err
	}
	return newCallback(kindInt64, fp, ctx, tok, inst.Guard()), nil
}

// ExportBytes installs fn in g and returns its
// int (*)(uintptr_t, uint8_t*, size_t) callback. The native caller sees 0 on
// success and non-zero when fn fails or the slot is gone.
func ExportBytes(g *bridge.Group[[]byte, error], fn func([]byte) error) (*Callback, error) {
	if fn == nil {
		return nil, bridge.ErrNilClosure
	}
	inst, err := g.Install(fn)
	if err != nil {
		return nil, err
	}
	tok := inst.Token()
	fp, ctx, err := bindings.NewBytesCallback(func(data []byte) error {
		res, err := g.Call(tok, data)
		if err != nil {
			return err
		}
		return res
	})
	if err != nil {
		inst.Release()
		return nil, err
	}
	return newCallback(kindBytes, fp, ctx, tok, inst.Guard()), nil
}

func newCallback(k kind, fp handle.Handle, ctx uintptr, tok bridge.Token, slot *guard.Guard) *Callback {
	boundary := guard.New(func() { bindings.FreeCallback(ctx) })
	return &Callback{
		kind:    k,
		fn:      fp,
		ctx:     ctx,
		token:   tok,
		release: guard.Chain(boundary, slot),
	}
}

// FuncPtr returns the native function pointer.
func (c *Callback) FuncPtr() handle.Handle { return c.fn }

// Context returns the value native code passes back as the first argument.
func (c *Callback) Context() uintptr { return c.ctx }

// Token returns the bridge token the callback dispatches to.
func (c *Callback) Token() bridge.Token { return c.token }

// Release unregisters the callback. It is idempotent.
func (c *Callback) Release() { c.release.Call() }

// Guard returns the release guard, for chaining or guard.AttachTo.
func (c *Callback) Guard() *guard.Guard { return c.release }

// InvokeInt64 calls the callback through its C function pointer.
func (c *Callback) InvokeInt64(arg int64) (int64, error) {
	if c.kind != kindInt64 {
		return 0, errors.New("weaver/native: not an int64 callback")
	}
	if c.release.Fired() {
		return 0, ErrReleased
	}
	return bindings.InvokeInt64(c.fn, c.ctx, arg)
}

// InvokeBytes calls the callback through its C function pointer.
func (c *Callback) InvokeBytes(data []byte) error {
	if c.kind != kindBytes {
		return errors.New("weaver/native: not a bytes callback")
	}
	if c.release.Fired() {
		return ErrReleased
	}
	return bindings.InvokeBytes(c.fn, c.ctx, data)
}

// Live returns the number of callbacks currently registered with the native
// trampolines.
func Live() int { return bindings.Live() }
