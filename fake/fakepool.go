// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/momentics/hioload-pool/api"
)

// HeapPool satisfies api.Pool without pooling anything: every Acquire
// allocates a fresh instance and Release only resets it. It keeps loan
// accounting so exhaustion-free code paths can still be exercised, and
// serves as the heap baseline in benchmarks.
//
// Capacity reports 0 and Acquire never returns nil. Unlike the fixed
// pools, HeapPool is safe for concurrent use; a mutex serializes the
// loan accounting.
type HeapPool[T any] struct {
	reset func(*T)

	mu       sync.Mutex
	lent     map[*T]bool
	acquires int64
	releases int64
	rejected int64
}

var _ api.Pool[struct{}] = (*HeapPool[struct{}])(nil)

// NewHeapPool builds the no-op pooling baseline for element type T.
func NewHeapPool[T any, P api.Handle[T]]() *HeapPool[T] {
	return &HeapPool[T]{
		reset: func(obj *T) { P(obj).Reset() },
		lent:  make(map[*T]bool),
	}
}

// Acquire allocates a fresh zero-value instance; it never exhausts.
func (hp *HeapPool[T]) Acquire() *T {
	obj := new(T)
	hp.mu.Lock()
	hp.lent[obj] = true
	hp.acquires++
	hp.mu.Unlock()
	return obj
}

// Release resets a lent instance and forgets it. Nil and unknown pointers
// are rejected, mirroring the fixed pool contract.
func (hp *HeapPool[T]) Release(obj *T) bool {
	hp.mu.Lock()
	defer hp.mu.Unlock()
	if obj == nil || !hp.lent[obj] {
		hp.rejected++
		return false
	}
	hp.reset(obj)
	delete(hp.lent, obj)
	hp.releases++
	return true
}

// Capacity reports 0: the baseline owns no instances.
func (hp *HeapPool[T]) Capacity() int { return 0 }

// Available reports 0: instances are made, not kept.
func (hp *HeapPool[T]) Available() int { return 0 }

// InUse reports the current number of outstanding loans.
func (hp *HeapPool[T]) InUse() int {
	hp.mu.Lock()
	defer hp.mu.Unlock()
	return len(hp.lent)
}

// Stats returns loan accounting; capacity-derived fields stay zero.
func (hp *HeapPool[T]) Stats() api.PoolStats {
	hp.mu.Lock()
	defer hp.mu.Unlock()
	return api.PoolStats{
		InUse:            len(hp.lent),
		TotalAcquires:    hp.acquires,
		TotalReleases:    hp.releases,
		RejectedReleases: hp.rejected,
	}
}
