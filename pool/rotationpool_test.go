package pool_test

import (
	"testing"

	"github.com/momentics/hioload-pool/pool"
)

func TestRotationPoolRotatesAcrossArena(t *testing.T) {
	p, err := pool.NewRotationPool[widget](2)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	x := p.Acquire()
	if !p.Release(x) {
		t.Fatal("release must be accepted")
	}
	// FIFO: the untouched second instance is lent before the released one.
	y := p.Acquire()
	if y == x {
		t.Error("rotation must prefer the least recently used instance")
	}
	if z := p.Acquire(); z != x {
		t.Errorf("released instance must come back after rotation: got %p want %p", z, x)
	}
}

func TestRotationPoolFIFOReuseOrder(t *testing.T) {
	p, err := pool.NewRotationPool[widget](3)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	lent := drainPool(t, p)
	order := []*widget{lent[2], lent[0], lent[1]}
	for _, w := range order {
		if !p.Release(w) {
			t.Fatal("release must be accepted")
		}
	}
	for i, want := range order {
		if got := p.Acquire(); got != want {
			t.Fatalf("FIFO order broken at %d: got %p want %p", i, got, want)
		}
	}
}

func TestRotationPoolExhaustionAndRecovery(t *testing.T) {
	p, err := pool.NewRotationPool[widget](2)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	lent := drainPool(t, p)
	if p.Acquire() != nil {
		t.Error("expected nil on exhausted pool")
	}
	if !p.Release(lent[0]) {
		t.Fatal("release must be accepted")
	}
	if p.Acquire() == nil {
		t.Error("pool must recover after a release")
	}
	st := p.Stats()
	if st.Exhaustions != 1 || st.TotalAcquires != 3 {
		t.Errorf("counters wrong: %+v", st)
	}
}

func TestRotationPoolRejectsUnknownAndIdlePointers(t *testing.T) {
	p, err := pool.NewRotationPool[widget](2)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if p.Release(nil) || p.Release(&widget{}) {
		t.Error("nil and foreign releases must be rejected")
	}
	w := p.Acquire()
	p.Release(w)
	if p.Release(w) {
		t.Error("double release must be rejected")
	}
	if w.resets != 1 {
		t.Errorf("expected exactly one reset, got %d", w.resets)
	}
}

func TestRotationPoolResetsOnRelease(t *testing.T) {
	p, err := pool.NewRotationPool[widget](1)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	w := p.Acquire()
	w.payload[3] = 7
	p.Release(w)
	if w.payload[3] != 0 || w.resets != 1 {
		t.Errorf("release must reset the instance, resets=%d", w.resets)
	}
}
