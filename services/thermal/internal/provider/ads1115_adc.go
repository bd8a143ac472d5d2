package provider

import (
	"thermistor-go/drivers/ads1115"
)

// ADS1115 adapts the external converter driver to the thermal ADC source.
//
// The ADS1115 reference is its internal PGA, not the sensor supply, so the
// raw-code ratio only equals the divider ratio when the supply matches the
// configured full-scale range. Enable supply compensation and wire the rail
// to one of the inputs for accurate ratios; ReadVoltage then carries the
// measurement.
type ADS1115 struct {
	dev *ads1115.Device
}

// NewADS1115 wraps an already configured device.
func NewADS1115(dev *ads1115.Device) *ADS1115 {
	return &ADS1115{dev: dev}
}

func (a *ADS1115) ReadRaw(ch int) (uint32, error) {
	raw, err := a.dev.ReadSingle(ch)
	if err != nil {
		return 0, err
	}
	if raw < 0 {
		// Single-ended inputs read slightly below zero when grounded.
		raw = 0
	}
	return uint32(raw), nil
}

func (a *ADS1115) FullScale() uint32 { return uint32(a.dev.FullScale()) }

func (a *ADS1115) ReadVoltage(ch int) (float64, error) {
	raw, err := a.dev.ReadSingle(ch)
	if err != nil {
		return 0, err
	}
	return a.dev.Voltage(raw), nil
}

func (a *ADS1115) RefVoltage() float64 { return a.dev.FSR() }
