// File: pool/rotationpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO fixed pool: free slot indices travel through a queue, so successive
// borrow cycles rotate across the whole arena instead of hammering the most
// recently freed slot. Useful when instances hold warm caches or handles
// that benefit from even wear.

package pool

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-pool/api"
)

// RotationPool reuses the least recently released instance first. It keeps
// the fixed-capacity contract of FixedPool; only the documented reuse order
// differs. The free queue may resize its internal buffer, the instance
// arena never moves.
//
// Not safe for concurrent use; callers serialize access externally.
type RotationPool[T any] struct {
	base[T]
	free  *queue.Queue // FIFO of free slot indices
	inUse []bool
}

var _ api.Pool[struct{}] = (*RotationPool[struct{}])(nil)

// NewRotationPool builds a FIFO pool owning capacity instances of T.
// Returns an *api.Error with ErrCodeInvalidArgument when capacity is not
// positive.
func NewRotationPool[T any, P api.Handle[T]](capacity int, opts ...Option) (*RotationPool[T], error) {
	b, err := newBase[T](capacity, func(obj *T) { P(obj).Reset() }, "rotation", opts)
	if err != nil {
		return nil, err
	}
	p := &RotationPool[T]{
		base:  b,
		free:  queue.New(),
		inUse: make([]bool, capacity),
	}
	for i := 0; i < capacity; i++ {
		p.free.Add(i)
	}
	p.publish(p.Stats)
	return p, nil
}

// Acquire lends the least recently freed instance, or returns nil when the
// pool is exhausted.
func (p *RotationPool[T]) Acquire() *T {
	if p.free.Length() == 0 {
		p.noteExhausted()
		return nil
	}
	slot := p.free.Remove().(int)
	p.inUse[slot] = true
	p.noteAcquire(slot)
	return &p.arena[slot]
}

// Release returns a borrowed instance, resetting it first. Nil, foreign,
// and not-currently-lent pointers are rejected with no state change.
func (p *RotationPool[T]) Release(obj *T) bool {
	slot, ok := p.indexOf(obj)
	if !ok {
		return p.rejectRelease(-1, reasonUnknownPointer)
	}
	if !p.inUse[slot] {
		return p.rejectRelease(slot, reasonNotLent)
	}
	p.reset(obj)
	p.inUse[slot] = false
	p.free.Add(slot)
	p.noteRelease(slot)
	return true
}

// Available reports how many instances are currently free.
func (p *RotationPool[T]) Available() int { return p.free.Length() }

// InUse reports how many instances are currently lent out.
func (p *RotationPool[T]) InUse() int { return len(p.arena) - p.free.Length() }

// Stats returns a point-in-time accounting snapshot.
func (p *RotationPool[T]) Stats() api.PoolStats { return p.snapshot(p.free.Length()) }
