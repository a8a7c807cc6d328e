// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity object pooling for hioload-pool.
// Implements arena-backed pools that pre-allocate every instance at
// construction and recycle them through acquire/release cycles with no
// further instance allocation: FixedPool (LIFO reuse), SlotPool (first-fit
// twin-tracker layout), RotationPool (FIFO wear leveling), and a
// sync.Pool-backed SyncPool for contrast with runtime-managed pooling.
// All pools are single-threaded by contract; see fixedpool.go for the
// reference semantics.
package pool
