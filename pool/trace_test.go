package pool_test

import (
	"testing"

	"github.com/momentics/hioload-pool/pool"
)

func TestTraceRecordsOperationsInOrder(t *testing.T) {
	p, err := pool.NewFixedPool[widget](1, pool.WithTrace(8))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	w := p.Acquire()
	p.Acquire() // exhausted
	p.Release(w)
	p.Release(w) // rejected

	events := p.Trace()
	wantOps := []pool.TraceOp{pool.TraceAcquire, pool.TraceExhausted, pool.TraceRelease, pool.TraceReject}
	if len(events) != len(wantOps) {
		t.Fatalf("expected %d events, got %d", len(wantOps), len(events))
	}
	for i, ev := range events {
		if ev.Op != wantOps[i] {
			t.Errorf("event %d: got %q want %q", i, ev.Op, wantOps[i])
		}
		if ev.Seq != uint64(i) {
			t.Errorf("event %d: seq %d out of order", i, ev.Seq)
		}
	}
	if events[0].Slot != 0 {
		t.Errorf("acquire event must carry the slot, got %d", events[0].Slot)
	}
	if events[3].Reason == "" {
		t.Error("reject event must carry a reason")
	}
}

func TestTraceEvictsOldestWhenFull(t *testing.T) {
	// Depth 3 rounds up to 4.
	p, err := pool.NewFixedPool[widget](1, pool.WithTrace(3))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		w := p.Acquire()
		p.Release(w)
	}
	events := p.Trace()
	if len(events) != 4 {
		t.Fatalf("expected 4 retained events, got %d", len(events))
	}
	if events[0].Seq != 2 {
		t.Errorf("oldest retained event must be seq 2, got %d", events[0].Seq)
	}
	for i := 1; i < len(events); i++ {
		if events[i].Seq != events[i-1].Seq+1 {
			t.Error("retained events must be contiguous")
		}
	}
}

func TestTraceDisabledByDefault(t *testing.T) {
	p, err := pool.NewFixedPool[widget](1)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	w := p.Acquire()
	p.Release(w)
	if got := p.Trace(); got != nil {
		t.Errorf("expected nil trace when disabled, got %v", got)
	}
}
