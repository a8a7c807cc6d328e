// File: pool/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options shared by all fixed-capacity pool constructors.

package pool

import (
	"log"

	"github.com/momentics/hioload-pool/api"
)

// Option configures a pool at construction time.
type Option func(*options)

type options struct {
	name       string
	logger     *log.Logger
	debug      api.Debug
	lockMemory bool
	prefault   bool
	traceDepth int
}

// WithName labels the pool in log lines and debug probes. Defaults to the
// implementation name ("fixed", "slot", "rotation").
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger directs diagnostic output (rejected releases, lock failures)
// to the given logger. Pools stay silent without one.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDebug registers a state probe named "pool.<name>" on the given sink
// at construction. The probe reports stats, lock status, and trace events.
func WithDebug(d api.Debug) Option {
	return func(o *options) { o.debug = d }
}

// WithLockedMemory pins the arena pages in RAM (mlock on Linux, VirtualLock
// on Windows) so lent instances never page-fault. Best-effort: unsupported
// platforms and permission failures leave the pool fully functional with an
// unlocked arena, reported by Locked().
func WithLockedMemory() Option {
	return func(o *options) { o.lockMemory = true }
}

// WithPrefault touches every arena page at construction, front-loading the
// page faults that would otherwise hit the first borrowers.
func WithPrefault() Option {
	return func(o *options) { o.prefault = true }
}

// WithTrace retains the last n pool operations in an in-memory ring for
// diagnostics, rounded up to a power of two. Zero disables tracing.
func WithTrace(n int) Option {
	return func(o *options) { o.traceDepth = n }
}
