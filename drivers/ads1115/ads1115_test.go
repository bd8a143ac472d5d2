package ads1115

import (
	"errors"
	"math"
	"testing"
	"time"
)

// fakeI2C scripts the two-register protocol: config writes are recorded,
// config reads report busy for a set number of polls, conversion reads
// return a fixed code.
type fakeI2C struct {
	lastConfig uint16
	conv       int16
	busyPolls  int
	err        error
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	if f.err != nil {
		return f.err
	}
	if len(w) == 3 && w[0] == regConfig {
		f.lastConfig = uint16(w[1])<<8 | uint16(w[2])
		return nil
	}
	if len(w) == 1 && len(r) == 2 {
		var v uint16
		switch w[0] {
		case regConfig:
			v = f.lastConfig | cfgOSSingle
			if f.busyPolls > 0 {
				f.busyPolls--
				v &^= cfgOSSingle
			}
		case regConversion:
			v = uint16(f.conv)
		}
		r[0] = byte(v >> 8)
		r[1] = byte(v)
	}
	return nil
}

func newTestDevice(f *fakeI2C) Device {
	d := New(f)
	d.Configure(Config{PollInterval: time.Microsecond, ConvertTimeout: 10 * time.Millisecond})
	return d
}

func TestReadSingle(t *testing.T) {
	f := &fakeI2C{conv: 16384, busyPolls: 2}
	d := newTestDevice(f)

	raw, err := d.ReadSingle(2)
	if err != nil {
		t.Fatal(err)
	}
	if raw != 16384 {
		t.Fatalf("raw: %d", raw)
	}
	// The start write must request a single-shot conversion of AIN2.
	if f.lastConfig&cfgOSSingle == 0 {
		t.Fatal("OS bit not set in start write")
	}
	if mux := f.lastConfig & 0x7000; mux != (cfgMuxSingle0+2*cfgMuxStep)&0x7000 {
		t.Fatalf("mux bits: %#x", mux)
	}
	if f.lastConfig&cfgModeSingle == 0 {
		t.Fatal("single-shot mode not set")
	}
}

func TestReadSingleBadChannel(t *testing.T) {
	d := newTestDevice(&fakeI2C{})
	if _, err := d.ReadSingle(4); err != ErrBadChannel {
		t.Fatalf("got %v", err)
	}
	if _, err := d.ReadSingle(-1); err != ErrBadChannel {
		t.Fatalf("got %v", err)
	}
}

func TestReadSingleTimesOut(t *testing.T) {
	f := &fakeI2C{busyPolls: 1 << 30}
	d := New(f)
	d.Configure(Config{PollInterval: time.Microsecond, ConvertTimeout: 2 * time.Millisecond})
	if _, err := d.ReadSingle(0); err != ErrTimeout {
		t.Fatalf("got %v", err)
	}
}

func TestReadSinglePropagatesBusError(t *testing.T) {
	busErr := errors.New("nak")
	d := newTestDevice(&fakeI2C{err: busErr})
	if _, err := d.ReadSingle(0); err != busErr {
		t.Fatalf("got %v", err)
	}
}

func TestVoltageScaling(t *testing.T) {
	d := newTestDevice(&fakeI2C{})
	// Default gain is +/-4.096 V, so half scale is 2.048 V.
	if got := d.Voltage(16384); math.Abs(got-2.048) > 1e-9 {
		t.Fatalf("got %v", got)
	}
	if got := d.Voltage(-16384); math.Abs(got+2.048) > 1e-9 {
		t.Fatalf("negative: got %v", got)
	}
	if d.FSR() != 4.096 {
		t.Fatalf("fsr: %v", d.FSR())
	}
}
