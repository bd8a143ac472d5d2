// Package sense holds the measurement pipeline of one thermal channel:
// divider-ratio inversion to resistance, resistance to temperature, and
// range-based fault classification. Everything here is pure arithmetic on a
// channel config, which keeps it trivially testable.
package sense

import (
	"math"

	"thermistor-go/services/thermal/config"
	"thermistor-go/types"
	"thermistor-go/x/mathx"
)

// OpenCircuitOhm is the sentinel for a low-side divider whose measurement
// node is pinned to the rail (no current through the sensor).
const OpenCircuitOhm = 1e9

// RatioInvFromCode forms the inverse divider ratio Vcc/Vth from a raw ADC
// code. The +1 keeps a full-scale reading finite.
func RatioInvFromCode(raw, fullScale uint32) float64 {
	return float64(fullScale) / float64(raw+1)
}

// RatioInvFromVolts forms the inverse divider ratio from measured node and
// supply voltages (supply-ripple compensated path).
func RatioInvFromVolts(vth, vcc float64) float64 {
	if vth <= 0 {
		return math.Inf(1)
	}
	return vcc / vth
}

// Resistance estimates the sensor resistance in ohms from the inverse
// divider ratio, clamped to the sensor's plausibility band.
func Resistance(ratioInv float64, c *config.Channel) float64 {
	r := estimate(ratioInv, c)
	minOhm, maxOhm := profileFor(c.Sensor).band(c)
	return mathx.Clamp(r, minOhm, maxOhm)
}

// estimate inverts the divider network. Dual-pull topologies use the
// reciprocal-sum form; a non-positive conductance means the reading is
// physically inconsistent with the second pull, in which case the single-pull
// estimate is substituted and the classifier judges the result.
func estimate(ratioInv float64, c *config.Channel) float64 {
	switch c.Conn {
	case types.ConnLowSide:
		if ratioInv <= 1 {
			// Node at the rail: no current path through the sensor.
			return OpenCircuitOhm
		}
		if c.Pull == types.PullBoth {
			g := (ratioInv-1)/c.PullUpOhm - 1/c.PullDownOhm
			if g > 0 {
				return 1 / g
			}
		}
		return c.PullUpOhm / (ratioInv - 1)

	default: // high side
		if ratioInv <= 1 {
			// Node at the rail: sensor shorted across the supply.
			return 0
		}
		if c.Pull == types.PullBoth {
			g := 1/(c.PullDownOhm*(ratioInv-1)) - 1/c.PullUpOhm
			if g > 0 {
				return 1 / g
			}
		}
		return c.PullDownOhm * (ratioInv - 1)
	}
}
