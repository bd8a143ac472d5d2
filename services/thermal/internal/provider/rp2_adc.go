//go:build rp2040

package provider

import (
	"machine"

	"thermistor-go/errcode"
)

// RP2 samples the RP2040 on-chip SAR ADC. The converter is ratiometric
// against the 3.3 V rail, so raw-code ratio mode is exact without supply
// compensation.
type RP2 struct {
	inputs []machine.ADC
	ref    float64
}

// NewRP2 configures the given pins as ADC inputs, in channel order.
func NewRP2(pins ...machine.Pin) *RP2 {
	machine.InitADC()
	inputs := make([]machine.ADC, len(pins))
	for i, p := range pins {
		a := machine.ADC{Pin: p}
		a.Configure(machine.ADCConfig{})
		inputs[i] = a
	}
	return &RP2{inputs: inputs, ref: 3.3}
}

func (r *RP2) ReadRaw(ch int) (uint32, error) {
	if ch < 0 || ch >= len(r.inputs) {
		return 0, errcode.BadChannel
	}
	return uint32(r.inputs[ch].Get()), nil
}

// FullScale matches machine.ADC.Get, which left-aligns to 16 bits.
func (r *RP2) FullScale() uint32 { return 1 << 16 }

func (r *RP2) ReadVoltage(ch int) (float64, error) {
	raw, err := r.ReadRaw(ch)
	if err != nil {
		return 0, err
	}
	return float64(raw) / float64(r.FullScale()) * r.ref, nil
}

func (r *RP2) RefVoltage() float64 { return r.ref }
