// File: bench/runner.go
// Author: momentics <momentics@gmail.com>
//
// Strategy execution. Every pool strategy runs the same loop: acquire one
// element, touch it, release it. Heap and stack strategies replace the
// pool with direct allocation so the cost difference is the measurement.

package bench

import (
	"log"
	"time"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/control"
	"github.com/momentics/hioload-pool/fake"
	"github.com/momentics/hioload-pool/pool"
)

// Strategy names an allocation approach under measurement.
type Strategy string

const (
	StrategyHeap     Strategy = "heap"
	StrategyStack    Strategy = "stack"
	StrategyFixed    Strategy = "fixedpool"
	StrategySlot     Strategy = "slotpool"
	StrategyRotation Strategy = "rotationpool"
	StrategySync     Strategy = "syncpool"
	StrategyFake     Strategy = "fakepool"
)

// AllStrategies returns every strategy in canonical run order.
func AllStrategies() []string {
	return []string{
		string(StrategyHeap),
		string(StrategyStack),
		string(StrategyFixed),
		string(StrategySlot),
		string(StrategyRotation),
		string(StrategySync),
		string(StrategyFake),
	}
}

var knownStrategies = func() map[string]bool {
	m := make(map[string]bool)
	for _, s := range AllStrategies() {
		m[s] = true
	}
	return m
}()

// element joins the pool contract with the touch every measurement loop
// performs on a borrowed instance.
type element[T any] interface {
	api.Handle[T]
	Touch()
}

// heapSink keeps heap-allocated elements observable so the compiler cannot
// stack-allocate them away.
var heapSink any

// Run executes the profile and returns the collected report. Timings are
// mirrored into reg and logged per strategy when logger is non-nil; both
// may be nil.
func Run(p Profile, reg *control.MetricsRegistry, logger *log.Logger) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch p.SizeClass {
	case Size1KiB:
		return run[block1K](p, reg, logger)
	case Size64KiB:
		return run[block64K](p, reg, logger)
	default:
		return run[block1M](p, reg, logger)
	}
}

func run[T any, P element[T]](p Profile, reg *control.MetricsRegistry, logger *log.Logger) (*Report, error) {
	report := &Report{Profile: p}
	for _, name := range p.Strategies {
		res, err := measure[T, P](Strategy(name), p)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, res)
		mirror(reg, p, res)
		if logger != nil {
			for _, line := range resultLines(res) {
				logger.Printf("[bench] %s: %s", p.Name, line)
			}
		}
	}
	return report, nil
}

// mirror publishes one result into the registry under the
// bench.<profile>.<strategy> key prefix. A nil registry drops the timings.
func mirror(reg *control.MetricsRegistry, p Profile, r Result) {
	if reg == nil {
		return
	}
	prefix := "bench." + p.Name + "." + string(r.Strategy)
	reg.Set(prefix+".setup_ns", r.Setup.Nanoseconds())
	reg.Set(prefix+".elapsed_ns", r.Elapsed.Nanoseconds())
	reg.Set(prefix+".per_op_ns", r.PerOp.Nanoseconds())
}

func measure[T any, P element[T]](s Strategy, p Profile) (Result, error) {
	touch := func(o *T) { P(o).Touch() }
	switch s {
	case StrategyHeap:
		return measureHeap[T, P](p), nil
	case StrategyStack:
		return measureStack[T, P](p), nil
	case StrategySync:
		return measureSync[T, P](p), nil
	case StrategyFixed:
		return measurePool[T](s, p, touch, func() (api.Pool[T], error) {
			return pool.NewFixedPool[T, P](p.Capacity, poolOpts(p)...)
		})
	case StrategySlot:
		return measurePool[T](s, p, touch, func() (api.Pool[T], error) {
			return pool.NewSlotPool[T, P](p.Capacity, poolOpts(p)...)
		})
	case StrategyRotation:
		return measurePool[T](s, p, touch, func() (api.Pool[T], error) {
			return pool.NewRotationPool[T, P](p.Capacity, poolOpts(p)...)
		})
	default: // StrategyFake, validated upstream
		return measurePool[T](s, p, touch, func() (api.Pool[T], error) {
			return fake.NewHeapPool[T, P](), nil
		})
	}
}

func poolOpts(p Profile) []pool.Option {
	var opts []pool.Option
	if p.TraceDepth > 0 {
		opts = append(opts, pool.WithTrace(p.TraceDepth))
	}
	if p.LockMemory {
		opts = append(opts, pool.WithLockedMemory())
	}
	if p.Prefault {
		opts = append(opts, pool.WithPrefault())
	}
	return opts
}

func measureHeap[T any, P element[T]](p Profile) Result {
	start := time.Now()
	for i := 0; i < p.Iterations; i++ {
		obj := new(T)
		P(obj).Touch()
		heapSink = obj
	}
	elapsed := time.Since(start)
	heapSink = nil
	return Result{Strategy: StrategyHeap, Elapsed: elapsed, PerOp: perOp(elapsed, p.Iterations)}
}

func measureStack[T any, P element[T]](p Profile) Result {
	start := time.Now()
	for i := 0; i < p.Iterations; i++ {
		var obj T
		P(&obj).Touch()
	}
	elapsed := time.Since(start)
	return Result{Strategy: StrategyStack, Elapsed: elapsed, PerOp: perOp(elapsed, p.Iterations)}
}

func measureSync[T any, P element[T]](p Profile) Result {
	sp := pool.NewSyncPool[T, P]()
	start := time.Now()
	for i := 0; i < p.Iterations; i++ {
		obj := sp.Get()
		P(obj).Touch()
		sp.Put(obj)
	}
	elapsed := time.Since(start)
	return Result{Strategy: StrategySync, Elapsed: elapsed, PerOp: perOp(elapsed, p.Iterations)}
}

// measurePool times construction separately, then runs the shared
// acquire/touch/release loop. One element is outstanding at a time, so a
// valid pool never exhausts here.
func measurePool[T any](s Strategy, p Profile, touch func(*T), build func() (api.Pool[T], error)) (Result, error) {
	start := time.Now()
	pl, err := build()
	if err != nil {
		return Result{}, err
	}
	setup := time.Since(start)

	begin := time.Now()
	for i := 0; i < p.Iterations; i++ {
		obj := pl.Acquire()
		if obj == nil {
			continue
		}
		touch(obj)
		pl.Release(obj)
	}
	elapsed := time.Since(begin)
	if closer, ok := pl.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	return Result{Strategy: s, Setup: setup, Elapsed: elapsed, PerOp: perOp(elapsed, p.Iterations)}, nil
}

func perOp(total time.Duration, iters int) time.Duration {
	if iters <= 0 {
		return 0
	}
	return total / time.Duration(iters)
}
