// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines the fixed-capacity pooling contracts: resettable elements,
// borrow/return semantics, and pool statistics.

package api

// Resettable is implemented by pooled element types. Reset restores the
// instance to a state indistinguishable from freshly constructed, so the
// next borrower never observes a previous borrower's data.
//
// Reset must not fail and must not panic. Pools invoke it exactly once per
// accepted release, at release time.
type Resettable interface {
	Reset()
}

// Handle constrains a pool element to "pointer to T implementing Resettable".
// Pool constructors take it as a type parameter so the element contract is
// checked at compile time; the zero value of T is the state first-time
// borrowers observe.
type Handle[T any] interface {
	*T
	Resettable
}

// Pool is the fixed-capacity pooling contract. An implementation owns
// exactly Capacity() instances for its whole lifetime: no instance storage
// is allocated or freed after construction, and every pointer it lends
// points into that storage.
//
// Implementations are not safe for concurrent use unless documented
// otherwise; callers serialize access externally.
type Pool[T any] interface {
	// Acquire lends a free instance, or returns nil when every instance
	// is already lent out. It never panics on exhaustion.
	Acquire() *T

	// Release returns a borrowed instance to the pool, resetting it first.
	// The boolean reports acceptance: nil, foreign, and not-currently-lent
	// pointers are ignored without mutating pool state.
	Release(obj *T) bool

	// Capacity reports the fixed instance count.
	Capacity() int

	// Available reports how many instances are currently free.
	Available() int

	// InUse reports how many instances are currently lent out.
	InUse() int

	// Stats returns a point-in-time accounting snapshot.
	Stats() PoolStats
}

// PoolStats aggregates lifetime pool accounting. Available+InUse always
// equals Capacity.
type PoolStats struct {
	Capacity  int
	Available int
	InUse     int

	// TotalAcquires counts successful Acquire calls.
	TotalAcquires int64
	// TotalReleases counts accepted Release calls.
	TotalReleases int64
	// Exhaustions counts Acquire calls that found no free instance.
	Exhaustions int64
	// RejectedReleases counts Release calls ignored as nil, foreign,
	// or not currently lent.
	RejectedReleases int64
}
