// Package api
// Author: momentics
//
// Live debug and contract validation support for production workloads.

package api

// Debug exposes runtime introspection for pools and harness components.
// Pools constructed with a debug sink register a state probe under
// "pool.<name>" reporting stats, lock status, and recent trace events.
type Debug interface {
	// DumpState emits a snapshot of all registered probe outputs.
	DumpState() map[string]any

	// RegisterProbe dynamically registers a named debug probe.
	RegisterProbe(name string, fn func() any)
}
