package thermal

import (
	"thermistor-go/drivers/ads1115"
	"thermistor-go/services/thermal/internal/provider"
)

// Provider constructors re-exported for binaries outside this package tree.

// NewSimADC returns a settable simulated ADC (tests, host demos).
func NewSimADC(fullScale uint32, refVolts float64) *provider.Sim {
	return provider.NewSim(fullScale, refVolts)
}

// NewADS1115ADC adapts a configured ADS1115 to an ADCSource.
func NewADS1115ADC(dev *ads1115.Device) ADCSource {
	return provider.NewADS1115(dev)
}
