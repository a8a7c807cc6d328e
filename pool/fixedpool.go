// File: pool/fixedpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The reference fixed-capacity pool: a contiguous arena of N instances,
// a LIFO stack of free slot indices, and an in-use bitset. Acquire pops
// in O(1); Release validates ownership with a linear identity scan, so
// foreign and duplicate pointers are rejected instead of corrupting state.

package pool

import "github.com/momentics/hioload-pool/api"

// FixedPool lends pointers into an arena of exactly N zero-value instances
// allocated once at construction. Acquire never allocates; Release resets
// the instance and returns its slot to the free stack.
//
// Reuse order: a fresh pool hands out slots in ascending index order;
// thereafter the most recently released instance is always reused first.
//
// Not safe for concurrent use; callers serialize access externally.
type FixedPool[T any] struct {
	base[T]
	free  []int  // LIFO stack of free slot indices
	inUse []bool // per-slot loan flag
}

var _ api.Pool[struct{}] = (*FixedPool[struct{}])(nil)

// NewFixedPool builds a pool owning capacity instances of T. The second
// type parameter pins the element contract at compile time: *T must
// implement api.Resettable. Returns an *api.Error with
// ErrCodeInvalidArgument when capacity is not positive.
func NewFixedPool[T any, P api.Handle[T]](capacity int, opts ...Option) (*FixedPool[T], error) {
	b, err := newBase[T](capacity, func(obj *T) { P(obj).Reset() }, "fixed", opts)
	if err != nil {
		return nil, err
	}
	p := &FixedPool[T]{
		base:  b,
		free:  make([]int, capacity),
		inUse: make([]bool, capacity),
	}
	// Slot 0 on top of the stack so a fresh pool lends ascending indices.
	for i := range p.free {
		p.free[i] = capacity - 1 - i
	}
	p.publish(p.Stats)
	return p, nil
}

// Acquire lends a free instance, or returns nil when the pool is exhausted.
func (p *FixedPool[T]) Acquire() *T {
	if len(p.free) == 0 {
		p.noteExhausted()
		return nil
	}
	slot := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.inUse[slot] = true
	p.noteAcquire(slot)
	return &p.arena[slot]
}

// Release returns a borrowed instance, resetting it first. Nil, foreign,
// and not-currently-lent pointers are rejected with no state change.
func (p *FixedPool[T]) Release(obj *T) bool {
	slot, ok := p.indexOf(obj)
	if !ok {
		return p.rejectRelease(-1, reasonUnknownPointer)
	}
	if !p.inUse[slot] {
		return p.rejectRelease(slot, reasonNotLent)
	}
	p.reset(obj)
	p.inUse[slot] = false
	p.free = append(p.free, slot)
	p.noteRelease(slot)
	return true
}

// Available reports how many instances are currently free.
func (p *FixedPool[T]) Available() int { return len(p.free) }

// InUse reports how many instances are currently lent out.
func (p *FixedPool[T]) InUse() int { return len(p.arena) - len(p.free) }

// Stats returns a point-in-time accounting snapshot.
func (p *FixedPool[T]) Stats() api.PoolStats { return p.snapshot(len(p.free)) }
