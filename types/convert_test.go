package types

import (
	"math"
	"testing"
)

func TestConversionRoundTrip(t *testing.T) {
	for _, c := range []float64{-273.15, -40, 0, 25, 36.6, 100, 850} {
		if got := KelvinToDegC(DegCToKelvin(c)); math.Abs(got-c) > 1e-4 {
			t.Fatalf("kelvin round-trip for %v: got %v", c, got)
		}
		want := 1.8*c + 32
		if got := DegCToDegF(c); math.Abs(got-want) > 1e-4 {
			t.Fatalf("fahrenheit for %v: got %v want %v", c, got, want)
		}
	}
}

func TestConversionFixedPoints(t *testing.T) {
	if DegCToKelvin(0) != 273.15 {
		t.Fatal("0 degC must be 273.15 K")
	}
	if DegCToDegF(100) != 212 {
		t.Fatal("100 degC must be 212 degF")
	}
	if DegCToDegF(-40) != -40 {
		t.Fatal("-40 degC must be -40 degF")
	}
}
