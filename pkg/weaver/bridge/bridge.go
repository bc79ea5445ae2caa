package bridge

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/weaver-go/weaver/pkg/weaver/guard"
	"github.com/weaver-go/weaver/pkg/weaver/logging"
)

type key struct {
	group GroupID
	slot  SlotID
}

// slot is one installed closure. gen tells a release guard apart from a
// later installation that reused the same key.
type slot struct {
	closure any
	gen     uint64
}

// Bridge is the closure registry. Create one with New; the zero value is not
// usable.
type Bridge struct {
	mu     sync.Mutex
	slots  map[key]slot
	next   map[GroupID]SlotID
	groups map[GroupID]reflect.Type
	gen    uint64

	log     logging.Logger
	retries int
	backoff time.Duration
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger for install, release and dispatch diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(b *Bridge) { b.log = l }
}

// WithRetry makes Register retry an occupied slot up to attempts times,
// sleeping backoff between attempts without holding the bridge lock.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(b *Bridge) {
		if attempts < 0 {
			attempts = 0
		}
		b.retries = attempts
		b.backoff = backoff
	}
}

// New returns an empty Bridge.
func New(opts ...Option) *Bridge {
	b := &Bridge{
		slots:  make(map[key]slot),
		next:   make(map[GroupID]SlotID),
		groups: make(map[GroupID]reflect.Type),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = logging.OrDefault(b.log)
	return b
}

// Register installs closure under the caller-chosen (g, s). The slot must
// not be installed already; see WithRetry. The returned guard releases the
// slot.
func (b *Bridge) Register(ctx context.Context, g GroupID, s SlotID, closure any) (Token, *guard.Guard, error) {
	if closure == nil {
		return 0, nil, ErrNilClosure
	}
	if s == 0 || s > MaxSlot {
		return 0, nil, fmt.Errorf("%w: %d", ErrSlotRange, s)
	}
	k := key{group: g, slot: s}
	for attempt := 0; ; attempt++ {
		if gen, ok := b.insert(k, closure); ok {
			b.log.Debug(ctx, "bridge slot registered", logging.KeyGroup, g, logging.KeySlot, s)
			return MakeToken(g, s), b.releaser(k, gen), nil
		}
		if attempt >= b.retries {
			if b.retries == 0 {
				return 0, nil, fmt.Errorf("%w: %s", ErrSlotOccupied, MakeToken(g, s))
			}
			return 0, nil, fmt.Errorf("%w: %s still occupied after %d retries", ErrSlotExhausted, MakeToken(g, s), b.retries)
		}
		select {
		case <-ctx.Done():
			return 0, nil, ctx.Err()
		case <-time.After(b.backoff):
		}
	}
}

// Install installs closure in group g under a fresh slot taken from the
// group's counter.
func (b *Bridge) Install(g GroupID, closure any) (Token, SlotID, *guard.Guard, error) {
	if closure == nil {
		return 0, 0, nil, ErrNilClosure
	}
	b.mu.Lock()
	s := b.next[g]
	if s == 0 {
		s = 1
	}
	for {
		if s > MaxSlot {
			b.mu.Unlock()
			return 0, 0, nil, fmt.Errorf("%w: group %d", ErrSlotExhausted, g)
		}
		if _, taken := b.slots[key{group: g, slot: s}]; !taken {
			break
		}
		s++
	}
	k := key{group: g, slot: s}
	b.gen++
	gen := b.gen
	b.slots[k] = slot{closure: closure, gen: gen}
	b.next[g] = s + 1
	b.mu.Unlock()

	b.log.Debug(context.Background(), "bridge slot installed", logging.KeyGroup, g, logging.KeySlot, s)
	return MakeToken(g, s), s, b.releaser(k, gen), nil
}

// insert is the compare-and-insert primitive behind Register.
func (b *Bridge) insert(k key, closure any) (uint64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, taken := b.slots[k]; taken {
		return 0, false
	}
	b.gen++
	b.slots[k] = slot{closure: closure, gen: b.gen}
	return b.gen, true
}

func (b *Bridge) releaser(k key, gen uint64) *guard.Guard {
	return guard.New(func() {
		b.mu.Lock()
		cur, ok := b.slots[k]
		if ok && cur.gen == gen {
			delete(b.slots, k)
		}
		b.mu.Unlock()
		if ok && cur.gen == gen {
			b.log.Debug(context.Background(), "bridge slot released", logging.KeyGroup, k.group, logging.KeySlot, k.slot)
		}
	})
}

// Lookup returns the closure installed under (g, s).
func (b *Bridge) Lookup(g GroupID, s SlotID) (any, bool) {
	b.mu.Lock()
	cur, ok := b.slots[key{group: g, slot: s}]
	b.mu.Unlock()
	return cur.closure, ok
}

// Release removes whatever is installed under (g, s) and reports whether
// there was something. Guards issued for that installation become no-ops.
func (b *Bridge) Release(g GroupID, s SlotID) bool {
	k := key{group: g, slot: s}
	b.mu.Lock()
	_, ok := b.slots[k]
	delete(b.slots, k)
	b.mu.Unlock()
	if ok {
		b.log.Debug(context.Background(), "bridge slot released", logging.KeyGroup, g, logging.KeySlot, s)
	}
	return ok
}

// Len returns the number of installed slots across all groups.
func (b *Bridge) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.slots)
}

// bindGroup records the signature of group g, or checks it against the one
// recorded first.
func (b *Bridge) bindGroup(g GroupID, sig reflect.Type) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if have, ok := b.groups[g]; ok && have != sig {
		return fmt.Errorf("%w: group %d is %v, not %v", ErrGroupSignature, g, have, sig)
	}
	b.groups[g] = sig
	return nil
}
