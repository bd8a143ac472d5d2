package filter

import (
	"math"
	"testing"
)

func TestNewRCValidation(t *testing.T) {
	if _, err := NewRC(0, 10, 1, 0); err != ErrBadCutoff {
		t.Fatalf("zero cutoff: got %v", err)
	}
	if _, err := NewRC(-1, 10, 1, 0); err != ErrBadCutoff {
		t.Fatalf("negative cutoff: got %v", err)
	}
	if _, err := NewRC(5, 10, 1, 0); err != ErrBadCutoff {
		t.Fatalf("cutoff at Nyquist: got %v", err)
	}
	if _, err := NewRC(1, 0, 1, 0); err != ErrBadSampleRate {
		t.Fatalf("zero sample rate: got %v", err)
	}
	if _, err := NewRC(1, 10, 0, 0); err != ErrBadOrder {
		t.Fatalf("zero order: got %v", err)
	}
}

func TestSeedHasNoStartupTransient(t *testing.T) {
	f, err := NewRC(1, 10, 1, 25.0)
	if err != nil {
		t.Fatal(err)
	}
	// Feeding the seed value must keep the output at the seed exactly.
	for i := 0; i < 10; i++ {
		if got := f.Update(25.0); math.Abs(got-25.0) > 1e-12 {
			t.Fatalf("tick %d: got %v, want 25", i, got)
		}
	}
}

func TestStepConvergence(t *testing.T) {
	f, err := NewRC(1, 100, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	var y float64
	for i := 0; i < 1000; i++ {
		y = f.Update(50.0)
	}
	if math.Abs(y-50.0) > 1e-3 {
		t.Fatalf("did not converge to step input: %v", y)
	}
	// Output must approach monotonically from below for a positive step.
	f.Reset(0)
	prev := 0.0
	for i := 0; i < 100; i++ {
		y = f.Update(50.0)
		if y < prev || y > 50.0 {
			t.Fatalf("non-monotonic step response at tick %d: %v -> %v", i, prev, y)
		}
		prev = y
	}
}

func TestSetCutoffPreservesState(t *testing.T) {
	f, err := NewRC(1, 100, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		f.Update(10.0)
	}
	before := f.Output()
	if err := f.SetCutoff(5); err != nil {
		t.Fatal(err)
	}
	if f.Output() != before {
		t.Fatal("SetCutoff must not reset section state")
	}
	if f.Cutoff() != 5 {
		t.Fatalf("cutoff not updated: %v", f.Cutoff())
	}
	if err := f.SetCutoff(0); err != ErrBadCutoff {
		t.Fatalf("invalid cutoff accepted: %v", err)
	}
	if f.Cutoff() != 5 {
		t.Fatal("failed SetCutoff must leave cutoff unchanged")
	}
}

func TestHigherOrderIsSlower(t *testing.T) {
	f1, _ := NewRC(1, 100, 1, 0)
	f2, _ := NewRC(1, 100, 2, 0)
	var y1, y2 float64
	for i := 0; i < 30; i++ {
		y1 = f1.Update(1.0)
		y2 = f2.Update(1.0)
	}
	if y2 >= y1 {
		t.Fatalf("second-order response should lag first-order: %v >= %v", y2, y1)
	}
}
