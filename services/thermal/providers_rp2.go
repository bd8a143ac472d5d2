//go:build rp2040

package thermal

import (
	"machine"

	"thermistor-go/services/thermal/internal/provider"
)

// NewRP2ADC samples the RP2040 on-chip ADC on the given pins, in channel
// order.
func NewRP2ADC(pins ...machine.Pin) ADCSource {
	return provider.NewRP2(pins...)
}
