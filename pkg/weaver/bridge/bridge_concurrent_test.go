package bridge

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestRegisterDispatchesWithoutCrossTalk(t *testing.T) {
	b := newTestBridge()
	g, err := NewGroup[int, string](b, 1)
	if err != nil {
		t.Fatalf("NewGroup: %v", err)
	}

	ctx := context.Background()
	c1, err := g.Register(ctx, 1, func(n int) string { return fmt.Sprintf("c1:%d", n) })
	if err != nil {
		t.Fatalf("register c1: %v", err)
	}
	c2, err := g.Register(ctx, 2, func(n int) string { return fmt.Sprintf("c2:%d", n) })
	if err != nil {
		t.Fatalf("register c2: %v", err)
	}

	tramp := g.Trampoline()

	const workers = 16
	const rounds = 200
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			inst, want := c1, "c1"
			if w%2 == 1 {
				inst, want = c2, "c2"
			}
			for i := 0; i < rounds; i++ {
				if got := tramp(inst.Token(), i); got != fmt.Sprintf("%s:%d", want, i) {
					errCh <- fmt.Errorf("worker %d: got %q", w, got)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("cross-talk: %v", err)
	}
}

func TestInstallNeverCollides(t *testing.T) {
	b := newTestBridge()
	g, err := NewGroup[struct{}, int](b, 9)
	if err != nil {
		t.Fatalf("NewGroup: %v", err)
	}
	if _, err := g.Register(context.Background(), 2, func(struct{}) int { return -1 }); err != nil {
		t.Fatalf("register slot 2: %v", err)
	}

	const workers = 8
	const each = 100
	var mu sync.Mutex
	seen := make(map[SlotID]bool)
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				inst, err := g.Install(func(struct{}) int { return 0 })
				if err != nil {
					errCh <- fmt.Errorf("install: %w", err)
					return
				}
				mu.Lock()
				dup := seen[inst.Slot()] || inst.Slot() == 2
				seen[inst.Slot()] = true
				mu.Unlock()
				if dup {
					errCh <- fmt.Errorf("slot %d issued twice", inst.Slot())
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent install: %v", err)
	}

	if len(seen) != workers*each {
		t.Fatalf("expected %d distinct slots, got %d", workers*each, len(seen))
	}
	if got := b.Len(); got != workers*each+1 {
		t.Fatalf("expected %d installed slots, got %d", workers*each+1, got)
	}
}

func TestSlowClosureDoesNotBlockOtherSlots(t *testing.T) {
	b := newTestBridge()
	g, err := NewGroup[int, int](b, 1)
	if err != nil {
		t.Fatalf("NewGroup: %v", err)
	}

	unblock := make(chan struct{})
	defer close(unblock)
	slow, err := g.Install(func(int) int { <-unblock; return 0 })
	if err != nil {
		t.Fatalf("install slow: %v", err)
	}
	fast, err := g.Install(func(n int) int { return n })
	if err != nil {
		t.Fatalf("install fast: %v", err)
	}

	go func() { _, _ = slow.Call(0) }()

	done := make(chan struct{})
	go func() {
		_, _ = fast.Call(1)
		fast.Release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("fast slot blocked behind a running closure")
	}
}
