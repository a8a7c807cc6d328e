// File: pool/syncpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime-managed pooling built atop sync.Pool, with the same element
// contract as the fixed pools. Put resets the instance so borrowers always
// observe a clean object.

package pool

import (
	"sync"

	"github.com/momentics/hioload-pool/api"
)

// SyncPool wraps sync.Pool behind the Resettable element contract. Unlike
// the fixed pools it grows on demand, may drop idle instances at any GC
// cycle, and is safe for concurrent use. It keeps none of the fixed
// capacity guarantees; it exists for contrast and migration.
type SyncPool[T any] struct {
	pool  *sync.Pool
	reset func(*T)
}

// NewSyncPool builds a runtime-managed pool of T. The type parameter P
// pins the element contract: *T must implement api.Resettable.
func NewSyncPool[T any, P api.Handle[T]]() *SyncPool[T] {
	return &SyncPool[T]{
		pool:  &sync.Pool{New: func() any { return new(T) }},
		reset: func(obj *T) { P(obj).Reset() },
	}
}

// Get returns a clean instance, allocating when the pool is empty.
func (sp *SyncPool[T]) Get() *T {
	return sp.pool.Get().(*T)
}

// Put resets obj and offers it back for reuse. Nil is ignored.
func (sp *SyncPool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	sp.reset(obj)
	sp.pool.Put(obj)
}
