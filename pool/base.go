// File: pool/base.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared plumbing for the fixed-capacity pool implementations: the arena
// owning all instances, reset dispatch, lifetime counters, diagnostics,
// and the page-lock lifecycle. Concrete pools embed base and add their
// free-slot tracking on top.

package pool

import (
	"log"
	"os"
	"unsafe"

	"github.com/momentics/hioload-pool/api"
)

// Reject reasons recorded in traces and log lines.
const (
	reasonUnknownPointer = "pointer not owned by pool"
	reasonNotLent        = "instance not currently lent"
)

// base carries everything the pool implementations share. It never tracks
// which slots are free; that is the embedding pool's job.
type base[T any] struct {
	arena []T
	reset func(*T)

	name   string
	logger *log.Logger
	debug  api.Debug
	trace  *traceRing

	locked     bool
	lockedView []byte

	// Plain counters: pools are single-threaded by contract.
	acquires  int64
	releases  int64
	exhausted int64
	rejected  int64
}

// newBase validates capacity, applies options, allocates the arena, and
// performs the optional prefault and page-lock passes.
func newBase[T any](capacity int, reset func(*T), defaultName string, opts []Option) (base[T], error) {
	if capacity < 1 {
		return base[T]{}, api.NewError(api.ErrCodeInvalidArgument, "pool capacity must be positive").
			WithContext("capacity", capacity)
	}
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name == "" {
		cfg.name = defaultName
	}
	b := base[T]{
		arena:  make([]T, capacity),
		reset:  reset,
		name:   cfg.name,
		logger: cfg.logger,
		debug:  cfg.debug,
	}
	if cfg.traceDepth > 0 {
		b.trace = newTraceRing(cfg.traceDepth)
	}
	view := arenaBytes(b.arena)
	if cfg.prefault {
		prefault(view)
	}
	if cfg.lockMemory {
		b.lockArena(view)
	}
	return b, nil
}

// Capacity reports the fixed instance count.
func (b *base[T]) Capacity() int { return len(b.arena) }

// Locked reports whether the arena pages are currently pinned in RAM.
func (b *base[T]) Locked() bool { return b.locked }

// Trace returns the retained diagnostic events oldest first, or nil when
// tracing is disabled.
func (b *base[T]) Trace() []TraceEvent {
	if b.trace == nil {
		return nil
	}
	return b.trace.snapshot()
}

// Close releases OS resources taken at construction (page locks). It is
// idempotent and the pool remains fully usable afterwards.
func (b *base[T]) Close() error {
	if !b.locked {
		return nil
	}
	b.locked = false
	view := b.lockedView
	b.lockedView = nil
	return unlockPages(view)
}

// indexOf maps a pointer back to its arena slot by identity scan. Linear
// on purpose: membership validation needs no side tables, and release cost
// is bounded by the fixed capacity.
func (b *base[T]) indexOf(obj *T) (int, bool) {
	if obj == nil {
		return -1, false
	}
	for i := range b.arena {
		if obj == &b.arena[i] {
			return i, true
		}
	}
	return -1, false
}

// slotFor resolves a pointer's arena slot for trace records only; it skips
// the scan entirely when tracing is off.
func (b *base[T]) slotFor(obj *T) int {
	if b.trace == nil {
		return -1
	}
	slot, _ := b.indexOf(obj)
	return slot
}

func (b *base[T]) noteAcquire(slot int) {
	b.acquires++
	b.record(TraceAcquire, slot, "")
}

func (b *base[T]) noteExhausted() {
	b.exhausted++
	b.record(TraceExhausted, -1, "")
}

func (b *base[T]) noteRelease(slot int) {
	b.releases++
	b.record(TraceRelease, slot, "")
}

// rejectRelease accounts for a release the pool refuses to honor. Pool
// state stays untouched; only counters and diagnostics move.
func (b *base[T]) rejectRelease(slot int, reason string) bool {
	b.rejected++
	b.record(TraceReject, slot, reason)
	if b.logger != nil {
		b.logger.Printf("[pool] %s: release rejected: %s", b.name, reason)
	}
	return false
}

func (b *base[T]) record(op TraceOp, slot int, reason string) {
	if b.trace == nil {
		return
	}
	b.trace.record(TraceEvent{Op: op, Slot: slot, Reason: reason})
}

// snapshot assembles PoolStats from the shared counters plus the
// implementation-reported availability.
func (b *base[T]) snapshot(available int) api.PoolStats {
	return api.PoolStats{
		Capacity:         len(b.arena),
		Available:        available,
		InUse:            len(b.arena) - available,
		TotalAcquires:    b.acquires,
		TotalReleases:    b.releases,
		Exhaustions:      b.exhausted,
		RejectedReleases: b.rejected,
	}
}

// publish registers the pool's debug probe if a sink was configured.
func (b *base[T]) publish(stats func() api.PoolStats) {
	if b.debug == nil {
		return
	}
	b.debug.RegisterProbe("pool."+b.name, func() any {
		state := map[string]any{
			"stats":  stats(),
			"locked": b.locked,
		}
		if b.trace != nil {
			state["trace"] = b.trace.snapshot()
		}
		return state
	})
}

// lockArena pins the arena pages best-effort. Failure keeps the pool fully
// functional; only the paging guarantee is lost.
func (b *base[T]) lockArena(view []byte) {
	if len(view) == 0 {
		return
	}
	if err := lockPages(view); err != nil {
		if b.logger != nil {
			b.logger.Printf("[pool] %s: memory lock unavailable: %v", b.name, err)
		}
		return
	}
	b.locked = true
	b.lockedView = view
}

// arenaBytes reinterprets the arena as its backing byte span for page
// operations. Zero-length arenas and zero-size element types yield nil.
func arenaBytes[T any](arena []T) []byte {
	if len(arena) == 0 {
		return nil
	}
	size := unsafe.Sizeof(arena[0])
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&arena[0])), int(size)*len(arena))
}

// prefault writes one byte per page so the arena is resident before the
// first acquire. The arena still holds zero values afterwards.
func prefault(view []byte) {
	if len(view) == 0 {
		return
	}
	page := os.Getpagesize()
	for i := 0; i < len(view); i += page {
		view[i] = 0
	}
	view[len(view)-1] = 0
}
