// Package thermal converts raw ADC readings from NTC and platinum RTD
// dividers into calibrated temperatures with low-pass filtering and
// range-based fault classification.
//
// A Manager is an explicit context object: it holds one channel table, one
// ADC source and the per-channel runtime state, and several independent
// managers may coexist. The Manager is single-threaded by contract; callers
// that need concurrency serialise access themselves (the bus service in this
// package does exactly that).
package thermal

import (
	"thermistor-go/errcode"
	"thermistor-go/services/thermal/config"
	"thermistor-go/services/thermal/internal/sense"
	"thermistor-go/types"
	"thermistor-go/x/filter"
)

type channelState struct {
	raw      uint32
	res      float64
	temp     float64
	tempFilt float64
	lpf      *filter.RC // nil when filtering is disabled
	status   types.ChannelStatus
}

// Manager owns a table of thermal channels sampled from one ADC.
type Manager struct {
	tbl  *config.Table
	adc  ADCSource
	st   []channelState
	init bool
}

// NewManager binds a channel table to an ADC source. Nothing is validated or
// read until Init.
func NewManager(tbl *config.Table, adc ADCSource) *Manager {
	return &Manager{tbl: tbl, adc: adc}
}

// Init validates the whole table, takes an initial reading per channel and
// seeds the filters with it so the first ticks carry no startup transient.
// Init is atomic: on any failure the manager stays uninitialized and holds
// no partial state.
func (m *Manager) Init() error {
	if m.init {
		return errcode.AlreadyInit
	}
	if m.adc == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "thermal.Init", Msg: "nil ADC source"}
	}
	if err := m.tbl.Validate(); err != nil {
		return err
	}

	st := make([]channelState, len(m.tbl.Channels))
	fs := m.tbl.SampleRateHz()
	for i := range m.tbl.Channels {
		c := &m.tbl.Channels[i]
		ratioInv, raw, err := m.sampleRatio(c)
		if err != nil {
			return &errcode.E{C: errcode.ADCFailure, Op: "thermal.Init", Err: err}
		}
		r := sense.Resistance(ratioInv, c)
		tC := sense.Temperature(r, c)
		s := channelState{raw: raw, res: r, temp: tC, tempFilt: tC, status: types.StatusOK}
		if !m.tbl.FilterDisabled {
			lpf, err := filter.NewRC(c.LPFCutoffHz, fs, 1, tC)
			if err != nil {
				return &errcode.E{C: errcode.FilterFailure, Op: "thermal.Init", Err: err}
			}
			s.lpf = lpf
		}
		st[i] = s
	}
	m.st = st
	m.init = true
	return nil
}

// Deinit drops all runtime state and returns the manager to uninitialized.
func (m *Manager) Deinit() {
	m.st = nil
	m.init = false
}

// IsInit reports whether Init has completed.
func (m *Manager) IsInit() bool { return m.init }

// Handle runs one sampling tick across all channels. It must be called at
// the table's PeriodMS cadence for the filters to be meaningful.
//
// An ADC failure on one channel marks that channel StatusGeneralError and
// the sweep continues; the first such failure is reported after the sweep.
func (m *Manager) Handle() error {
	if !m.init {
		return errcode.NotInitialized
	}
	var firstErr error
	for i := range m.tbl.Channels {
		c := &m.tbl.Channels[i]
		s := &m.st[i]

		ratioInv, raw, err := m.sampleRatio(c)
		if err != nil {
			s.status = types.StatusGeneralError
			if firstErr == nil {
				firstErr = &errcode.E{C: errcode.ADCFailure, Op: "thermal.Handle", Err: err}
			}
			continue
		}
		s.raw = raw
		s.res = sense.Resistance(ratioInv, c)
		s.temp = sense.Temperature(s.res, c)
		if s.lpf != nil {
			s.tempFilt = s.lpf.Update(s.temp)
		} else {
			s.tempFilt = s.temp
		}
		s.status = sense.Classify(s.status, s.tempFilt, c)
	}
	return firstErr
}

// sampleRatio samples one channel and forms the inverse divider ratio
// Vcc/Vth, either from raw codes (ratiometric) or from measured voltages
// when supply compensation is on. The raw code is reported alongside; in
// voltage mode it is the equivalent code against the full scale.
func (m *Manager) sampleRatio(c *config.Channel) (float64, uint32, error) {
	if m.tbl.Supply.Compensate {
		vth, err := m.adc.ReadVoltage(c.ADCChannel)
		if err != nil {
			return 0, 0, err
		}
		vcc, err := m.adc.ReadVoltage(m.tbl.Supply.ADCChannel)
		if err != nil {
			return 0, 0, err
		}
		if vcc <= 0 {
			vcc = m.tbl.Supply.Volts
		}
		raw := uint32(0)
		if vcc > 0 && vth > 0 {
			raw = uint32(vth / vcc * float64(m.adc.FullScale()))
		}
		return sense.RatioInvFromVolts(vth, vcc), raw, nil
	}
	raw, err := m.adc.ReadRaw(c.ADCChannel)
	if err != nil {
		return 0, 0, err
	}
	return sense.RatioInvFromCode(raw, m.adc.FullScale()), raw, nil
}

// ---- accessors ----

func (m *Manager) state(ch int) (*channelState, error) {
	if !m.init {
		return nil, errcode.NotInitialized
	}
	if ch < 0 || ch >= len(m.st) {
		return nil, errcode.BadChannel
	}
	return &m.st[ch], nil
}

// Channels returns the number of configured channels.
func (m *Manager) Channels() int { return len(m.tbl.Channels) }

// DegC returns the last unfiltered temperature in degrees Celsius.
func (m *Manager) DegC(ch int) (float64, error) {
	s, err := m.state(ch)
	if err != nil {
		return 0, err
	}
	return s.temp, nil
}

// DegF returns the last unfiltered temperature in degrees Fahrenheit.
func (m *Manager) DegF(ch int) (float64, error) {
	c, err := m.DegC(ch)
	return types.DegCToDegF(c), err
}

// Kelvin returns the last unfiltered temperature in kelvin.
func (m *Manager) Kelvin(ch int) (float64, error) {
	c, err := m.DegC(ch)
	return types.DegCToKelvin(c), err
}

// DegCFiltered returns the low-pass filtered temperature in degrees Celsius.
// With filtering disabled it equals DegC.
func (m *Manager) DegCFiltered(ch int) (float64, error) {
	s, err := m.state(ch)
	if err != nil {
		return 0, err
	}
	return s.tempFilt, nil
}

// DegFFiltered returns the filtered temperature in degrees Fahrenheit.
func (m *Manager) DegFFiltered(ch int) (float64, error) {
	c, err := m.DegCFiltered(ch)
	return types.DegCToDegF(c), err
}

// KelvinFiltered returns the filtered temperature in kelvin.
func (m *Manager) KelvinFiltered(ch int) (float64, error) {
	c, err := m.DegCFiltered(ch)
	return types.DegCToKelvin(c), err
}

// Raw returns the last sampled ADC code for the channel.
func (m *Manager) Raw(ch int) (uint32, error) {
	s, err := m.state(ch)
	if err != nil {
		return 0, err
	}
	return s.raw, nil
}

// Resistance returns the last estimated sensor resistance in ohms.
func (m *Manager) Resistance(ch int) (float64, error) {
	s, err := m.state(ch)
	if err != nil {
		return 0, err
	}
	return s.res, nil
}

// Status returns the channel's classified health.
func (m *Manager) Status(ch int) (types.ChannelStatus, error) {
	s, err := m.state(ch)
	if err != nil {
		return types.StatusGeneralError, err
	}
	return s.status, nil
}

// ResetStatus clears a latched fault. The next Handle re-classifies from OK.
func (m *Manager) ResetStatus(ch int) error {
	s, err := m.state(ch)
	if err != nil {
		return err
	}
	s.status = types.StatusOK
	return nil
}

// SetLPFCutoff changes a channel's filter cutoff without resetting filter
// state. Fails with Unsupported when filtering is disabled.
func (m *Manager) SetLPFCutoff(ch int, fcHz float64) error {
	s, err := m.state(ch)
	if err != nil {
		return err
	}
	if s.lpf == nil {
		return errcode.Unsupported
	}
	if err := s.lpf.SetCutoff(fcHz); err != nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "thermal.SetLPFCutoff", Err: err}
	}
	return nil
}

// LPFCutoff returns a channel's current filter cutoff in Hz.
func (m *Manager) LPFCutoff(ch int) (float64, error) {
	s, err := m.state(ch)
	if err != nil {
		return 0, err
	}
	if s.lpf == nil {
		return 0, errcode.Unsupported
	}
	return s.lpf.Cutoff(), nil
}
