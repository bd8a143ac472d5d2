// Package ads1115 provides a driver for the ADS1115 16-bit I²C ADC in
// single-shot mode. One conversion per call:
//
//	raw, err := d.ReadSingle(ch) // start, poll OS bit, fetch result
//
// Only single-ended inputs (AINx vs GND) are exposed; that is the wiring a
// thermistor divider uses.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided, without releasing the bus.
package ads1115

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// Default I2C address (ADDR pin to GND).
const Address = 0x48

// Registers.
const (
	regConversion = 0x00
	regConfig     = 0x01
)

// Config register fields.
const (
	cfgOSSingle   uint16 = 0x8000 // write: start conversion; read: 1 = idle
	cfgModeSingle uint16 = 0x0100
	cfgCompOff    uint16 = 0x0003

	cfgMuxSingle0 uint16 = 0x4000 // AIN0 vs GND
	cfgMuxStep    uint16 = 0x1000 // AIN1..AIN3 follow in steps
)

// Gain selects the programmable full-scale range.
type Gain uint16

const (
	GainTwoThirds Gain = 0x0000 // ±6.144 V
	GainOne       Gain = 0x0200 // ±4.096 V
	GainTwo       Gain = 0x0400 // ±2.048 V
	GainFour      Gain = 0x0600 // ±1.024 V
	GainEight     Gain = 0x0800 // ±0.512 V
	GainSixteen   Gain = 0x0A00 // ±0.256 V
)

// FSRVolts returns the full-scale range for the gain in volts.
func (g Gain) FSRVolts() float64 {
	switch g {
	case GainTwoThirds:
		return 6.144
	case GainOne:
		return 4.096
	case GainTwo:
		return 2.048
	case GainFour:
		return 1.024
	case GainEight:
		return 0.512
	default:
		return 0.256
	}
}

// DataRate selects samples per second.
type DataRate uint16

const (
	DR8   DataRate = 0x0000
	DR16  DataRate = 0x0020
	DR32  DataRate = 0x0040
	DR64  DataRate = 0x0060
	DR128 DataRate = 0x0080 // power-on default
	DR250 DataRate = 0x00A0
	DR475 DataRate = 0x00C0
	DR860 DataRate = 0x00E0
)

// Errors returned by the driver.
var (
	ErrBadChannel = errors.New("ads1115: channel must be 0..3")
	ErrTimeout    = errors.New("ads1115: conversion timeout")
)

// Config controls optional driver behaviour.
type Config struct {
	// Address defaults to 0x48 if zero.
	Address uint16
	// Gain defaults to GainOne (±4.096 V, covers a 3.3 V divider).
	Gain Gain
	// DataRate defaults to DR128.
	DataRate DataRate
	// PollInterval between OS-bit checks. Default 1 ms.
	PollInterval time.Duration
	// ConvertTimeout bounds the total wait per conversion. Default 100 ms.
	ConvertTimeout time.Duration
}

// Device wraps an I2C connection to an ADS1115.
type Device struct {
	bus     drivers.I2C
	Address uint16

	cfg Config
	buf [3]byte // reuse buffer to avoid allocations
}

// New creates a new ADS1115 connection. The I2C bus must already be
// configured. This function only creates the Device object; it does not
// touch the device.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address}
}

// Configure applies optional config; it may be called with no cfg.
func (d *Device) Configure(cfgs ...Config) {
	c := Config{}
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Address != 0 {
		d.Address = c.Address
	}
	if c.Gain == 0 {
		c.Gain = GainOne
	}
	if c.DataRate == 0 {
		c.DataRate = DR128
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Millisecond
	}
	if c.ConvertTimeout <= 0 {
		c.ConvertTimeout = 100 * time.Millisecond
	}
	d.cfg = c
}

// ReadSingle performs one single-shot conversion of AIN<ch> against GND and
// returns the signed 16-bit result.
func (d *Device) ReadSingle(ch int) (int16, error) {
	if ch < 0 || ch > 3 {
		return 0, ErrBadChannel
	}
	cfg := cfgOSSingle | cfgModeSingle | cfgCompOff |
		(cfgMuxSingle0 + uint16(ch)*cfgMuxStep) |
		uint16(d.cfg.Gain) | uint16(d.cfg.DataRate)

	d.buf[0] = regConfig
	d.buf[1] = byte(cfg >> 8)
	d.buf[2] = byte(cfg)
	if err := d.bus.Tx(d.Address, d.buf[:3], nil); err != nil {
		return 0, err
	}

	deadline := time.Now().Add(d.cfg.ConvertTimeout)
	for {
		idle, err := d.idle()
		if err != nil {
			return 0, err
		}
		if idle {
			break
		}
		if time.Now().After(deadline) {
			return 0, ErrTimeout
		}
		time.Sleep(d.cfg.PollInterval)
	}

	d.buf[0] = regConversion
	if err := d.bus.Tx(d.Address, d.buf[:1], d.buf[1:3]); err != nil {
		return 0, err
	}
	return int16(uint16(d.buf[1])<<8 | uint16(d.buf[2])), nil
}

// Voltage converts a raw reading to volts at the configured gain.
func (d *Device) Voltage(raw int16) float64 {
	return float64(raw) * d.cfg.Gain.FSRVolts() / 32768.0
}

// FullScale returns the positive raw full-scale code.
func (d *Device) FullScale() int32 { return 32767 }

// FSR returns the configured full-scale range in volts.
func (d *Device) FSR() float64 { return d.cfg.Gain.FSRVolts() }

func (d *Device) idle() (bool, error) {
	d.buf[0] = regConfig
	if err := d.bus.Tx(d.Address, d.buf[:1], d.buf[1:3]); err != nil {
		return false, err
	}
	return uint16(d.buf[1])<<8&cfgOSSingle != 0, nil
}
