// Package config describes the thermal service's channel table: which ADC
// input each sensor sits on, the divider topology around it, the conversion
// model, filtering and fault-classification parameters.
//
// A Table is plain data. Validation is explicit so a Manager can check the
// whole table before touching any channel.
package config

import (
	"thermistor-go/errcode"
	"thermistor-go/types"
	"thermistor-go/x/fmtx"
)

// Default NTC plausibility band, applied when a channel leaves
// NTCMinOhm/NTCMaxOhm unset.
const (
	DefaultNTCMinOhm = 1.0
	DefaultNTCMaxOhm = 10e6
)

// SupplyConfig enables supply-ripple compensation: instead of the raw-code
// ratio, the divider ratio is formed from measured channel and supply
// voltages. Volts is the nominal rail used when Compensate is off.
type SupplyConfig struct {
	Compensate bool    `json:"compensate"`
	ADCChannel int     `json:"adc_channel"`
	Volts      float64 `json:"volts"`
}

// Channel configures one temperature sensing channel.
type Channel struct {
	ADCChannel int              `json:"adc_channel"`
	Conn       types.HWConn     `json:"conn"`
	Pull       types.PullMode   `json:"pull"`
	PullUpOhm  float64          `json:"pull_up_ohm,omitempty"`
	// PullDownOhm is required for pull "down" and "both".
	PullDownOhm float64          `json:"pull_down_ohm,omitempty"`
	Sensor      types.SensorType `json:"sensor"`

	// NTC model parameters; ignored for PT sensors.
	NTCBeta       float64 `json:"ntc_beta,omitempty"`
	NTCNominalOhm float64 `json:"ntc_nominal_ohm,omitempty"`
	NTCMinOhm     float64 `json:"ntc_min_ohm,omitempty"`
	NTCMaxOhm     float64 `json:"ntc_max_ohm,omitempty"`

	LPFCutoffHz float64 `json:"lpf_cutoff_hz"`

	// Valid temperature band; readings outside classify as open/short.
	RangeMinC float64         `json:"range_min_c"`
	RangeMaxC float64         `json:"range_max_c"`
	Latch     types.LatchMode `json:"latch"`
}

// NTCBand returns the channel's resistance plausibility band with defaults
// applied. Only meaningful for NTC channels.
func (c *Channel) NTCBand() (minOhm, maxOhm float64) {
	minOhm, maxOhm = c.NTCMinOhm, c.NTCMaxOhm
	if minOhm <= 0 {
		minOhm = DefaultNTCMinOhm
	}
	if maxOhm <= 0 {
		maxOhm = DefaultNTCMaxOhm
	}
	return minOhm, maxOhm
}

// Table is the full service configuration.
type Table struct {
	Channels []Channel `json:"channels"`
	// PeriodMS is the handler period; the filter sample rate is 1000/PeriodMS.
	PeriodMS       uint32       `json:"period_ms"`
	FilterDisabled bool         `json:"filter_disabled,omitempty"`
	Supply         SupplyConfig `json:"supply"`
}

// SampleRateHz returns the handler rate implied by PeriodMS.
func (t *Table) SampleRateHz() float64 {
	if t.PeriodMS == 0 {
		return 0
	}
	return 1000.0 / float64(t.PeriodMS)
}

func bad(msg string) error {
	return &errcode.E{C: errcode.InvalidConfig, Op: "config.Validate", Msg: msg}
}

// Validate checks the whole table and reports the first problem found.
// A nil return guarantees every channel is safe to initialize.
func (t *Table) Validate() error {
	if t.PeriodMS == 0 {
		return bad("period_ms must be > 0")
	}
	if len(t.Channels) == 0 {
		return bad("at least one channel required")
	}
	if t.Supply.Compensate && t.Supply.Volts <= 0 {
		// Compensation measures VCC but still needs a nominal for fallback.
		return bad("supply.volts must be > 0")
	}
	nyquist := t.SampleRateHz() / 2
	for i := range t.Channels {
		if err := t.Channels[i].validate(i, nyquist); err != nil {
			return err
		}
	}
	return nil
}

func (c *Channel) validate(idx int, nyquistHz float64) error {
	badc := func(msg string) error {
		return bad(fmtx.Sprintf("channel %d: %s", idx, msg))
	}

	if c.ADCChannel < 0 {
		return badc("adc_channel must be >= 0")
	}

	switch c.Sensor {
	case types.SensorNTC:
		if c.NTCBeta <= 0 {
			return badc("ntc_beta must be > 0")
		}
		if c.NTCNominalOhm <= 0 {
			return badc("ntc_nominal_ohm must be > 0")
		}
		minOhm, maxOhm := c.NTCBand()
		if maxOhm <= minOhm {
			return badc("ntc_max_ohm must exceed ntc_min_ohm")
		}
	case types.SensorPT100, types.SensorPT500, types.SensorPT1000:
		// Model constants are fixed by DIN EN 60751.
	default:
		return badc("unknown sensor type " + string(c.Sensor))
	}

	// Only these divider topologies are electrically meaningful.
	switch {
	case c.Conn == types.ConnLowSide && c.Pull == types.PullUp:
	case c.Conn == types.ConnHighSide && c.Pull == types.PullDown:
	case c.Conn == types.ConnLowSide && c.Pull == types.PullBoth:
	case c.Conn == types.ConnHighSide && c.Pull == types.PullBoth:
	default:
		return badc("unsupported conn/pull pair " + string(c.Conn) + "/" + string(c.Pull))
	}
	if (c.Pull == types.PullUp || c.Pull == types.PullBoth) && c.PullUpOhm <= 0 {
		return badc("pull_up_ohm must be > 0")
	}
	if (c.Pull == types.PullDown || c.Pull == types.PullBoth) && c.PullDownOhm <= 0 {
		return badc("pull_down_ohm must be > 0")
	}

	if c.LPFCutoffHz <= 0 || c.LPFCutoffHz >= nyquistHz {
		return badc("lpf_cutoff_hz must be > 0 and below half the sample rate")
	}
	if c.RangeMaxC <= c.RangeMinC {
		return badc("range_max_c must exceed range_min_c")
	}

	switch c.Latch {
	case types.LatchFloating, types.LatchPermanent:
	default:
		return badc("unknown latch mode " + string(c.Latch))
	}
	return nil
}
