package mathx

import "testing"

func TestClamp(t *testing.T) {
	if Clamp(5.0, 0.0, 1.0) != 1.0 {
		t.Fatal("above hi must clamp to hi")
	}
	if Clamp(-5.0, 0.0, 1.0) != 0.0 {
		t.Fatal("below lo must clamp to lo")
	}
	if Clamp(0.5, 0.0, 1.0) != 0.5 {
		t.Fatal("inside band must pass through")
	}
	// Swapped bounds are tolerated.
	if Clamp(5, 10, 0) != 5 {
		t.Fatal("swapped bounds must behave like [0,10]")
	}
}

func TestBetween(t *testing.T) {
	if !Between(0.0, 0.0, 1.0) || !Between(1.0, 0.0, 1.0) {
		t.Fatal("Between must be boundary inclusive")
	}
	if Between(1.0001, 0.0, 1.0) {
		t.Fatal("outside band must be false")
	}
}
