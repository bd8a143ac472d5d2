// Package provider supplies ADC sources for the thermal service: the RP2040
// on-chip SAR ADC, an adaptor over the external ADS1115 converter, and a
// settable simulator for tests and host demos.
package provider

import "sync"

// Sim is a settable ADC. Codes and faults are injected per input; voltage
// reads derive from the code unless overridden. Safe for concurrent use so a
// test can steer it while the service loop samples.
type Sim struct {
	mu    sync.Mutex
	codes map[int]uint32
	volts map[int]float64
	errs  map[int]error
	scale uint32
	ref   float64
}

// NewSim creates a simulator with the given full-scale code and reference.
func NewSim(fullScale uint32, refVolts float64) *Sim {
	return &Sim{
		codes: make(map[int]uint32),
		volts: make(map[int]float64),
		errs:  make(map[int]error),
		scale: fullScale,
		ref:   refVolts,
	}
}

// SetCode sets the raw conversion result for an input.
func (s *Sim) SetCode(ch int, code uint32) {
	s.mu.Lock()
	s.codes[ch] = code
	s.mu.Unlock()
}

// SetVolts overrides the voltage reading for an input.
func (s *Sim) SetVolts(ch int, v float64) {
	s.mu.Lock()
	s.volts[ch] = v
	s.mu.Unlock()
}

// SetErr makes every read of the input fail with err (nil clears).
func (s *Sim) SetErr(ch int, err error) {
	s.mu.Lock()
	if err == nil {
		delete(s.errs, ch)
	} else {
		s.errs[ch] = err
	}
	s.mu.Unlock()
}

func (s *Sim) ReadRaw(ch int) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.errs[ch]; err != nil {
		return 0, err
	}
	return s.codes[ch], nil
}

func (s *Sim) FullScale() uint32 { return s.scale }

func (s *Sim) ReadVoltage(ch int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.errs[ch]; err != nil {
		return 0, err
	}
	if v, ok := s.volts[ch]; ok {
		return v, nil
	}
	return float64(s.codes[ch]) / float64(s.scale) * s.ref, nil
}

func (s *Sim) RefVoltage() float64 { return s.ref }
