// File: bench/report.go
// Author: momentics <momentics@gmail.com>
//
// Result collection and console rendering.

package bench

import (
	"fmt"
	"time"
)

// Result holds the timings of one strategy run.
type Result struct {
	Strategy Strategy
	// Setup is pool construction time, zero for heap, stack, and syncpool.
	Setup   time.Duration
	Elapsed time.Duration
	PerOp   time.Duration
}

// Report aggregates every strategy result of one profile run.
type Report struct {
	Profile Profile
	Results []Result
}

// Lines renders the report as console output, one line per measurement.
func (r *Report) Lines() []string {
	lines := []string{fmt.Sprintf("profile %q: %d iterations over %s elements, capacity %d",
		r.Profile.Name, r.Profile.Iterations, r.Profile.SizeClass, r.Profile.Capacity)}
	for _, res := range r.Results {
		lines = append(lines, resultLines(res)...)
	}
	return lines
}

// resultLines renders one result, keeping the classic sentence form for
// the direct allocation strategies.
func resultLines(r Result) []string {
	switch r.Strategy {
	case StrategyHeap:
		return []string{fmt.Sprintf("Heap allocations took %v (%v/op)", r.Elapsed, r.PerOp)}
	case StrategyStack:
		return []string{fmt.Sprintf("Stack allocations took %v (%v/op)", r.Elapsed, r.PerOp)}
	default:
		var lines []string
		if r.Setup > 0 {
			lines = append(lines, fmt.Sprintf("%s construction took %v", r.Strategy, r.Setup))
		}
		lines = append(lines, fmt.Sprintf("%s acquire/release took %v (%v/op)", r.Strategy, r.Elapsed, r.PerOp))
		return lines
	}
}
