// Package filter provides a single-pole RC low-pass filter for periodically
// sampled signals. Sections can be cascaded for a steeper roll-off; every
// section shares the same cutoff.
//
// The filter is seeded with an initial value so the first samples carry no
// startup transient from zero, and the cutoff can be changed at runtime
// without resetting internal state.
package filter

import (
	"errors"
	"math"
)

// Sentinel errors (TinyGo-safe; no fmt).
var (
	ErrBadCutoff     = errors.New("filter: cutoff must be positive and below Nyquist")
	ErrBadSampleRate = errors.New("filter: sample rate must be positive")
	ErrBadOrder      = errors.New("filter: order must be >= 1")
)

// RC is a cascade of identical single-pole low-pass sections.
type RC struct {
	fcHz  float64
	fsHz  float64
	alpha float64
	y     []float64 // one state per section
}

// NewRC creates a filter with the given cutoff, sample rate and order,
// seeded so that the output starts at initial.
func NewRC(fcHz, fsHz float64, order int, initial float64) (*RC, error) {
	if fsHz <= 0 {
		return nil, ErrBadSampleRate
	}
	if order < 1 {
		return nil, ErrBadOrder
	}
	f := &RC{fsHz: fsHz, y: make([]float64, order)}
	if err := f.SetCutoff(fcHz); err != nil {
		return nil, err
	}
	f.Reset(initial)
	return f, nil
}

// Update advances the filter by one sample and returns the filtered value.
// Must be called at the sample rate the filter was created with.
func (f *RC) Update(x float64) float64 {
	for i := range f.y {
		f.y[i] += f.alpha * (x - f.y[i])
		x = f.y[i]
	}
	return x
}

// SetCutoff changes the cutoff frequency without resetting section state.
func (f *RC) SetCutoff(fcHz float64) error {
	if fcHz <= 0 || fcHz >= f.fsHz/2 {
		return ErrBadCutoff
	}
	dt := 1.0 / f.fsHz
	rc := 1.0 / (2.0 * math.Pi * fcHz)
	f.fcHz = fcHz
	f.alpha = dt / (rc + dt)
	return nil
}

// Cutoff returns the current cutoff frequency in Hz.
func (f *RC) Cutoff() float64 { return f.fcHz }

// SampleRate returns the sample rate the filter was created with.
func (f *RC) SampleRate() float64 { return f.fsHz }

// Reset forces every section to the given value.
func (f *RC) Reset(v float64) {
	for i := range f.y {
		f.y[i] = v
	}
}

// Output returns the current filtered value without advancing the filter.
func (f *RC) Output() float64 { return f.y[len(f.y)-1] }
