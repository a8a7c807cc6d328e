// File: pool/trace.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Overwrite-on-full diagnostic ring of recent pool operations.
// Power-of-two capacity with mask indexing; unlike a FIFO queue the ring
// favors recency: once full, each new event evicts the oldest one.
// Single-threaded, like the pools it observes.

package pool

// TraceOp labels one recorded pool operation.
type TraceOp string

const (
	TraceAcquire   TraceOp = "acquire"
	TraceRelease   TraceOp = "release"
	TraceExhausted TraceOp = "exhausted"
	TraceReject    TraceOp = "reject"
)

// TraceEvent is one recorded pool operation.
type TraceEvent struct {
	// Seq numbers operations from zero in execution order.
	Seq uint64
	Op  TraceOp
	// Slot is the arena index involved, -1 when the operation has none.
	Slot int
	// Reason describes rejected releases, empty otherwise.
	Reason string
}

// traceRing keeps the newest events in a power-of-two buffer.
type traceRing struct {
	events []TraceEvent
	mask   uint64
	next   uint64 // total events ever recorded
}

// newTraceRing rounds depth up to a power of two, minimum 2.
func newTraceRing(depth int) *traceRing {
	size := 2
	for size < depth {
		size <<= 1
	}
	return &traceRing{
		events: make([]TraceEvent, size),
		mask:   uint64(size - 1),
	}
}

func (t *traceRing) record(ev TraceEvent) {
	ev.Seq = t.next
	t.events[t.next&t.mask] = ev
	t.next++
}

// snapshot returns the retained events, oldest first.
func (t *traceRing) snapshot() []TraceEvent {
	start := uint64(0)
	if depth := uint64(len(t.events)); t.next > depth {
		start = t.next - depth
	}
	out := make([]TraceEvent, 0, t.next-start)
	for i := start; i < t.next; i++ {
		out = append(out, t.events[i&t.mask])
	}
	return out
}
