// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for hioload-pool.
//
// Provides concurrent-safe state handling primitives including:
//   - Metrics telemetry with dynamic key registration
//   - State export, debug hooks, and probe registration
//
// Pools publish their probes here via pool.WithDebug; the bench runner
// mirrors its timings into a MetricsRegistry.
package control
