package sense

import (
	"math"

	"thermistor-go/services/thermal/config"
	"thermistor-go/types"
)

// DIN EN 60751 coefficients for platinum RTDs (valid for 0..850 degC; the
// quadratic inverse is used across the whole band, as is conventional).
const (
	ptA = 3.9083e-3
	ptB = -5.775e-7
)

// Platinum plausibility bands in ohms, the DIN table values at -200 degC and
// +850 degC scaled per nominal resistance.
const (
	pt100MinOhm, pt100MaxOhm   = 18.52, 390.48
	pt500MinOhm, pt500MaxOhm   = 114.13, 1937.74
	pt1000MinOhm, pt1000MaxOhm = 185.20, 3904.81
)

// profile bundles everything the pipeline needs to know about a sensor
// family: the conversion model, the resistance plausibility band, and which
// fault each end of the temperature range implies.
type profile struct {
	temp  func(rOhm float64, c *config.Channel) float64
	band  func(c *config.Channel) (minOhm, maxOhm float64)
	over  types.ChannelStatus // status when above RangeMaxC
	under types.ChannelStatus // status when below RangeMinC
}

// profileFor is total for every sensor type config.Validate accepts.
// An unknown type here is a programming error, not a runtime condition.
func profileFor(s types.SensorType) profile {
	switch s {
	case types.SensorNTC:
		// NTC resistance falls with temperature: hot reads as a short,
		// cold as an open circuit.
		return profile{
			temp:  ntcTemp,
			band:  func(c *config.Channel) (float64, float64) { return c.NTCBand() },
			over:  types.StatusShort,
			under: types.StatusOpen,
		}
	case types.SensorPT100:
		return ptProfile(100, pt100MinOhm, pt100MaxOhm)
	case types.SensorPT500:
		return ptProfile(500, pt500MinOhm, pt500MaxOhm)
	case types.SensorPT1000:
		return ptProfile(1000, pt1000MinOhm, pt1000MaxOhm)
	default:
		panic("sense: unknown sensor type " + string(s))
	}
}

// ptProfile builds the descriptor for a platinum RTD of the given nominal.
// RTD resistance rises with temperature, the inverse polarity of an NTC.
func ptProfile(refOhm, minOhm, maxOhm float64) profile {
	return profile{
		temp: func(rOhm float64, _ *config.Channel) float64 {
			return ptTemp(rOhm, refOhm)
		},
		band:  func(_ *config.Channel) (float64, float64) { return minOhm, maxOhm },
		over:  types.StatusOpen,
		under: types.StatusShort,
	}
}

// Temperature converts a (clamped) resistance to degrees Celsius using the
// channel's sensor model.
func Temperature(rOhm float64, c *config.Channel) float64 {
	return profileFor(c.Sensor).temp(rOhm, c)
}

// ntcTemp applies the beta-parameter model around the 25 degC nominal point.
func ntcTemp(rOhm float64, c *config.Channel) float64 {
	invT := 1.0/298.15 + math.Log(rOhm/c.NTCNominalOhm)/c.NTCBeta
	return 1.0/invT - 273.15
}

// ptTemp inverts the DIN EN 60751 quadratic R(T) = Rref(1 + A*T + B*T^2).
func ptTemp(rOhm, refOhm float64) float64 {
	return (-ptA + math.Sqrt(ptA*ptA-4*ptB*(1-rOhm/refOhm))) / (2 * ptB)
}
