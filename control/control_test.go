package control_test

import (
	"testing"

	"github.com/momentics/hioload-pool/control"
)

func TestDebugProbesRegisterAndDump(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterProbe("pool.a", func() any { return 1 })
	dp.RegisterProbe("pool.b", func() any { return "idle" })

	out := dp.DumpState()
	if len(out) != 2 {
		t.Fatalf("expected 2 probe outputs, got %d", len(out))
	}
	if out["pool.a"] != 1 || out["pool.b"] != "idle" {
		t.Errorf("unexpected dump: %v", out)
	}
	if names := dp.ProbeNames(); len(names) != 2 {
		t.Errorf("expected 2 probe names, got %v", names)
	}
}

func TestDebugProbesReplaceOnReregister(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterProbe("pool.a", func() any { return 1 })
	dp.RegisterProbe("pool.a", func() any { return 2 })
	if out := dp.DumpState(); out["pool.a"] != 2 {
		t.Errorf("expected replaced probe output, got %v", out)
	}
}

func TestMetricsRegistrySetAndSnapshot(t *testing.T) {
	mr := control.NewMetricsRegistry()
	if !mr.Updated().IsZero() {
		t.Error("fresh registry must report zero update time")
	}
	mr.Set("bench.default.heap.elapsed_ns", int64(42))
	v, ok := mr.Get("bench.default.heap.elapsed_ns")
	if !ok || v != int64(42) {
		t.Errorf("get mismatch: %v %v", v, ok)
	}
	if _, ok := mr.Get("missing"); ok {
		t.Error("missing key must report absence")
	}
	snap := mr.GetSnapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 metric, got %d", len(snap))
	}
	if mr.Updated().IsZero() {
		t.Error("update time must advance after set")
	}
	// Snapshot is a copy; mutating it must not touch the registry.
	snap["injected"] = true
	if _, ok := mr.Get("injected"); ok {
		t.Error("snapshot mutation leaked into registry")
	}
}
