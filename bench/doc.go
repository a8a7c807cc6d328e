// Package bench
// Author: momentics <momentics@gmail.com>
//
// Allocation strategy harness: times heap allocation, stack allocation,
// and the pool implementations over identical acquire/touch/release
// workloads. Profiles select element size, iteration count, and the
// strategies to compare; results render as console lines and mirror into
// a control.MetricsRegistry.
package bench
