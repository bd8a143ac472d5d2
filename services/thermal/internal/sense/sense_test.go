package sense

import (
	"math"
	"testing"

	"thermistor-go/services/thermal/config"
	"thermistor-go/types"
)

func ntcChannel() config.Channel {
	return config.Channel{
		Conn:          types.ConnLowSide,
		Pull:          types.PullUp,
		PullUpOhm:     10000,
		Sensor:        types.SensorNTC,
		NTCBeta:       3380,
		NTCNominalOhm: 10000,
		RangeMinC:     -20,
		RangeMaxC:     80,
		Latch:         types.LatchFloating,
	}
}

func ptChannel(s types.SensorType) config.Channel {
	return config.Channel{
		Conn:      types.ConnLowSide,
		Pull:      types.PullUp,
		PullUpOhm: 1000,
		Sensor:    s,
		RangeMinC: -50,
		RangeMaxC: 200,
		Latch:     types.LatchFloating,
	}
}

// ---- ratio helpers ----

func TestRatioInvFromCode(t *testing.T) {
	if got := RatioInvFromCode(32767, 65536); got != 2.0 {
		t.Fatalf("mid-scale: got %v", got)
	}
	if got := RatioInvFromCode(65535, 65536); got != 1.0 {
		t.Fatalf("full-scale: got %v", got)
	}
}

func TestRatioInvFromVolts(t *testing.T) {
	if got := RatioInvFromVolts(1.1, 3.3); math.Abs(got-3.0) > 1e-12 {
		t.Fatalf("got %v", got)
	}
	if got := RatioInvFromVolts(0, 3.3); !math.IsInf(got, 1) {
		t.Fatalf("grounded node must give +Inf, got %v", got)
	}
}

// ---- resistance estimator ----

func TestResistanceSinglePull(t *testing.T) {
	low := ntcChannel()
	if got := Resistance(2.0, &low); math.Abs(got-10000) > 1e-9 {
		t.Fatalf("low side pull-up: got %v", got)
	}

	high := ntcChannel()
	high.Conn = types.ConnHighSide
	high.Pull = types.PullDown
	high.PullDownOhm = 10000
	if got := Resistance(2.0, &high); math.Abs(got-10000) > 1e-9 {
		t.Fatalf("high side pull-down: got %v", got)
	}
}

func TestResistanceDualPull(t *testing.T) {
	// Low side sensor of 10 kOhm, 10 kOhm pull-up, 100 kOhm pull-down:
	// node ratio works out to Vcc/Vth = 2.1.
	low := ntcChannel()
	low.Pull = types.PullBoth
	low.PullDownOhm = 100000
	if got := Resistance(2.1, &low); math.Abs(got-10000) > 1e-6 {
		t.Fatalf("low side dual pull: got %v", got)
	}

	// Mirrored high side arrangement gives Vcc/Vth = 21/11.
	high := ntcChannel()
	high.Conn = types.ConnHighSide
	high.Pull = types.PullBoth
	high.PullDownOhm = 10000
	high.PullUpOhm = 100000
	if got := Resistance(21.0/11.0, &high); math.Abs(got-10000) > 1e-6 {
		t.Fatalf("high side dual pull: got %v", got)
	}
}

func TestResistanceDualPullInconsistentFallsBack(t *testing.T) {
	// A node ratio the pull-down alone would already explain: the dual-pull
	// conductance goes non-positive and the single-pull estimate is used.
	low := ntcChannel()
	low.Pull = types.PullBoth
	low.PullDownOhm = 100000
	got := Resistance(1.05, &low)
	want := 10000 / 0.05
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("fallback estimate: got %v, want %v", got, want)
	}
}

func TestResistanceDegenerateRatio(t *testing.T) {
	// Low side node at the rail: open circuit, clamped to the NTC band max.
	low := ntcChannel()
	if got := Resistance(1.0, &low); got != config.DefaultNTCMaxOhm {
		t.Fatalf("low side degenerate: got %v", got)
	}

	// High side node at the rail: short, clamped to the NTC band min.
	high := ntcChannel()
	high.Conn = types.ConnHighSide
	high.Pull = types.PullDown
	high.PullDownOhm = 10000
	if got := Resistance(0.5, &high); got != config.DefaultNTCMinOhm {
		t.Fatalf("high side degenerate: got %v", got)
	}
}

func TestResistanceClampsToPTBand(t *testing.T) {
	c := ptChannel(types.SensorPT1000)
	if got := Resistance(1e6, &c); got != pt1000MinOhm {
		t.Fatalf("under-band not clamped: got %v", got)
	}
	if got := Resistance(1.0001, &c); got != pt1000MaxOhm {
		t.Fatalf("over-band not clamped: got %v", got)
	}
}

// ---- temperature models ----

func TestNTCAtNominalIs25C(t *testing.T) {
	c := ntcChannel()
	if got := Temperature(10000, &c); math.Abs(got-25.0) > 0.01 {
		t.Fatalf("got %v", got)
	}
}

func TestPTAtReferenceIs0C(t *testing.T) {
	for _, tc := range []struct {
		s    types.SensorType
		rref float64
	}{
		{types.SensorPT100, 100},
		{types.SensorPT500, 500},
		{types.SensorPT1000, 1000},
	} {
		c := ptChannel(tc.s)
		if got := Temperature(tc.rref, &c); math.Abs(got) > 0.1 {
			t.Fatalf("%s at reference: got %v", tc.s, got)
		}
	}
}

func TestPT100At100C(t *testing.T) {
	// DIN EN 60751 table value for 100 degC.
	c := ptChannel(types.SensorPT100)
	if got := Temperature(138.51, &c); math.Abs(got-100.0) > 0.1 {
		t.Fatalf("got %v", got)
	}
}

func TestModelMonotonicity(t *testing.T) {
	ntc := ntcChannel()
	pt := ptChannel(types.SensorPT1000)
	prevNTC := Temperature(1000, &ntc)
	prevPT := Temperature(200, &pt)
	for r := 2000.0; r <= 100000; r += 2000 {
		if got := Temperature(r, &ntc); got >= prevNTC {
			t.Fatalf("NTC temperature must fall as resistance rises: %v -> %v at %v ohm", prevNTC, got, r)
		} else {
			prevNTC = got
		}
	}
	for r := 400.0; r <= 3800; r += 200 {
		if got := Temperature(r, &pt); got <= prevPT {
			t.Fatalf("PT temperature must rise with resistance: %v -> %v at %v ohm", prevPT, got, r)
		} else {
			prevPT = got
		}
	}
}

// ---- status classifier ----

func TestClassifyPolarity(t *testing.T) {
	ntc := ntcChannel()
	pt := ptChannel(types.SensorPT100)
	cases := []struct {
		name  string
		c     *config.Channel
		tempC float64
		want  types.ChannelStatus
	}{
		{"ntc in range", &ntc, 25, types.StatusOK},
		{"ntc at max boundary", &ntc, 80, types.StatusOK},
		{"ntc at min boundary", &ntc, -20, types.StatusOK},
		{"ntc over range", &ntc, 80.01, types.StatusShort},
		{"ntc under range", &ntc, -20.01, types.StatusOpen},
		{"pt over range", &pt, 200.01, types.StatusOpen},
		{"pt under range", &pt, -50.01, types.StatusShort},
	}
	for _, tc := range cases {
		if got := Classify(types.StatusOK, tc.tempC, tc.c); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestClassifyLatching(t *testing.T) {
	c := ntcChannel()

	// Floating: fault clears as soon as the reading is back in range.
	c.Latch = types.LatchFloating
	if got := Classify(types.StatusOpen, 25, &c); got != types.StatusOK {
		t.Fatalf("floating should clear: got %v", got)
	}

	// Permanent: fault sticks even with an in-range reading.
	c.Latch = types.LatchPermanent
	if got := Classify(types.StatusOpen, 25, &c); got != types.StatusOpen {
		t.Fatalf("permanent should hold: got %v", got)
	}
	if got := Classify(types.StatusGeneralError, 25, &c); got != types.StatusGeneralError {
		t.Fatalf("permanent should hold general error: got %v", got)
	}

	// Permanent channels still classify normally from OK.
	if got := Classify(types.StatusOK, 81, &c); got != types.StatusShort {
		t.Fatalf("permanent from OK: got %v", got)
	}
}
