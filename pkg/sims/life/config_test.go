package life

import (
	"testing"

	"life-ca/internal/core"
)

func TestClampSize(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 5}, {0, 5}, {4, 5}, {5, 5}, {12, 12}, {20, 20}, {21, 20}, {400, 20},
	}
	for _, tc := range tests {
		if got := ClampSize(tc.in); got != tc.want {
			t.Fatalf("ClampSize(%d) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestClampIntervalMs(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 50}, {50, 50}, {62, 50}, {63, 75}, {200, 200}, {212, 200}, {290, 300}, {300, 300}, {1000, 300},
	}
	for _, tc := range tests {
		if got := ClampIntervalMs(tc.in); got != tc.want {
			t.Fatalf("ClampIntervalMs(%d) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"size":        "30",
		"interval_ms": "125",
		"running":     "false",
		"seed":        "9",
	})
	if c.Size != 20 || c.IntervalMs != 125 || c.Running || c.Seed != 9 {
		t.Fatalf("unexpected config %+v", c)
	}

	c = FromMap(map[string]string{"size": "abc", "running": "maybe"})
	if c != DefaultConfig() {
		t.Fatalf("malformed values should keep defaults, got %+v", c)
	}

	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestParametersSnapshot(t *testing.T) {
	e := New(Config{Size: 7, IntervalMs: 150, Running: true, Seed: 1})
	e.Step()
	snap := e.Parameters()

	checks := map[string]string{
		ParamSize:       "7",
		ParamIntervalMs: "150",
		ParamRunning:    "true",
		ParamGeneration: "1",
	}
	for key, want := range checks {
		param, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if param.Value != want {
			t.Fatalf("parameter %q = %q, expected %q", key, param.Value, want)
		}
	}
	if param, ok := snap.Lookup(ParamRunning); !ok || param.Type != core.ParamTypeBool {
		t.Fatal("running should be exposed as a bool parameter")
	}
}

func TestSetParameters(t *testing.T) {
	e := New(DefaultConfig())
	if !e.SetIntParameter(ParamSize, 3) || e.Size() != MinSize {
		t.Fatalf("size = %d after SetIntParameter, expected %d", e.Size(), MinSize)
	}
	if !e.SetIntParameter(ParamIntervalMs, 275) || e.IntervalMs() != 275 {
		t.Fatalf("interval = %d, expected 275", e.IntervalMs())
	}
	if e.SetIntParameter(ParamGeneration, 5) {
		t.Fatal("generation should not be settable")
	}
	if !e.SetBoolParameter(ParamRunning, false) || e.Running() {
		t.Fatal("running should be settable to false")
	}
	if e.SetBoolParameter("unknown", true) {
		t.Fatal("unknown keys should be rejected")
	}

	controls := e.ParameterControls()
	if len(controls) != 3 {
		t.Fatalf("expected 3 controls, got %d", len(controls))
	}
	for _, ctrl := range controls {
		if ctrl.Key == ParamIntervalMs && (ctrl.Step != 25 || ctrl.Min != 50 || ctrl.Max != 300) {
			t.Fatalf("interval control %+v has unexpected bounds", ctrl)
		}
	}
}
