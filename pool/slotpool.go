// File: pool/slotpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Twin-tracker fixed pool: two parallel length-N pointer slices where every
// instance lives in exactly one of them at any moment. First-fit scans on
// both paths make acquire and release O(N); kept as the straightforward
// reference layout the arena pools are measured against.

package pool

import "github.com/momentics/hioload-pool/api"

// SlotPool tracks loans with an available/inUse slice pair over the arena.
// Acquire hands out the lowest-index available tracker slot, so the reuse
// order is first-fit by tracker position rather than release recency.
//
// Not safe for concurrent use; callers serialize access externally.
type SlotPool[T any] struct {
	base[T]
	available []*T
	inUse     []*T
	lent      int
}

var _ api.Pool[struct{}] = (*SlotPool[struct{}])(nil)

// NewSlotPool builds a twin-tracker pool owning capacity instances of T.
// Returns an *api.Error with ErrCodeInvalidArgument when capacity is not
// positive.
func NewSlotPool[T any, P api.Handle[T]](capacity int, opts ...Option) (*SlotPool[T], error) {
	b, err := newBase[T](capacity, func(obj *T) { P(obj).Reset() }, "slot", opts)
	if err != nil {
		return nil, err
	}
	p := &SlotPool[T]{
		base:      b,
		available: make([]*T, capacity),
		inUse:     make([]*T, capacity),
	}
	for i := range p.arena {
		p.available[i] = &p.arena[i]
	}
	p.publish(p.Stats)
	return p, nil
}

// Acquire lends the first available instance, or returns nil when the
// pool is exhausted.
func (p *SlotPool[T]) Acquire() *T {
	for i, obj := range p.available {
		if obj == nil {
			continue
		}
		p.available[i] = nil
		for j, held := range p.inUse {
			if held == nil {
				p.inUse[j] = obj
				break
			}
		}
		p.lent++
		p.noteAcquire(p.slotFor(obj))
		return obj
	}
	p.noteExhausted()
	return nil
}

// Release returns a borrowed instance, resetting it first. Nil, foreign,
// and not-currently-lent pointers are rejected with no state change.
func (p *SlotPool[T]) Release(obj *T) bool {
	if obj == nil {
		return p.rejectRelease(-1, reasonUnknownPointer)
	}
	for i, held := range p.inUse {
		if held != obj {
			continue
		}
		p.reset(obj)
		p.inUse[i] = nil
		for j, free := range p.available {
			if free == nil {
				p.available[j] = obj
				break
			}
		}
		p.lent--
		p.noteRelease(p.slotFor(obj))
		return true
	}
	if _, owned := p.indexOf(obj); !owned {
		return p.rejectRelease(-1, reasonUnknownPointer)
	}
	return p.rejectRelease(p.slotFor(obj), reasonNotLent)
}

// Available reports how many instances are currently free.
func (p *SlotPool[T]) Available() int { return len(p.arena) - p.lent }

// InUse reports how many instances are currently lent out.
func (p *SlotPool[T]) InUse() int { return p.lent }

// Stats returns a point-in-time accounting snapshot.
func (p *SlotPool[T]) Stats() api.PoolStats { return p.snapshot(len(p.arena) - p.lent) }
