// Package sgp30 drives the SGP30 multi-gas sensor over a two-wire bus.
// The device is command driven: a short command write, a fixed settle
// delay, then a word-oriented response read. Lifecycle:
//
//	d.Configure()                  // optional, applies Config defaults
//	err := d.InitAirQuality()      // once, at power-on; failure is terminal
//	d.SoftReset()                  // after a successful init
//	m, err := d.Measure()          // once per acquisition cycle
//
// Response words carry a trailing CRC byte each. The device protocol gap of
// reading and discarding those bytes is kept as the default; set
// Config.ValidateCRC to verify them instead.
package sgp30

import (
	"errors"
	"time"

	"github.com/crisanalex08/RasbperryCode/wire"
	"github.com/crisanalex08/RasbperryCode/x/fieldfmt"
	"github.com/crisanalex08/RasbperryCode/x/mathx"
)

// I2C address.
const Address = 0x58

// Command words.
var (
	cmdInitAirQuality    = [2]byte{0x20, 0x03}
	cmdMeasureAirQuality = [2]byte{0x20, 0x08}
	cmdSoftReset         = [2]byte{0x20, 0x04}
)

// State tracks the driver lifecycle. StateFailed is terminal: it is entered
// only from StateInitializing and never left.
type State uint8

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateMeasuring
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateMeasuring:
		return "measuring"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Errors returned by the driver.
var (
	ErrNotInitialized = errors.New("sgp30: not initialized")
	ErrShortRead      = errors.New("sgp30: short response read")
	ErrChecksum       = errors.New("sgp30: response checksum mismatch")
)

// TransmissionError reports a two-wire transaction that completed with a
// nonzero status code.
type TransmissionError struct {
	Status wire.Status
}

func (e *TransmissionError) Error() string {
	return "sgp30: transmission error (status " + fieldfmt.Uint(uint32(e.Status)) + ")"
}

// Config controls addressing and timing. All fields are optional.
type Config struct {
	// Address defaults to 0x58 if zero.
	Address uint16
	// ByteSettle is the delay between command bytes during init and reset.
	// Default 10 ms.
	ByteSettle time.Duration
	// InitSettle is the post-command delay after init and reset. Default 10 ms.
	InitSettle time.Duration
	// MeasureSettle is the delay between the measure command and the response
	// read. Default 12 ms; kept shorter than the init delays because this
	// path runs every cycle and must fit the cycle budget.
	MeasureSettle time.Duration
	// ValidateCRC verifies the response checksum bytes instead of discarding
	// them. Off by default to match the device's established behaviour.
	ValidateCRC bool
}

// Measurement is one decoded measure response.
type Measurement struct {
	CO2  uint16 // CO2 equivalent, ppm
	TVOC uint16 // total volatile organic compounds, ppb
}

// Device wraps a two-wire connection to an SGP30. The bus must already be
// configured.
type Device struct {
	bus   wire.Bus
	addr  uint16
	cfg   Config
	state State
}

// New creates the Device object without touching the hardware.
func New(bus wire.Bus) *Device {
	return &Device{bus: bus, addr: Address}
}

// Configure applies optional config, clamping timing fields to sane bounds.
func (d *Device) Configure(cfgs ...Config) {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Address != 0 {
		d.addr = c.Address
	}
	if c.ByteSettle <= 0 {
		c.ByteSettle = 10 * time.Millisecond
	}
	if c.InitSettle <= 0 {
		c.InitSettle = 10 * time.Millisecond
	}
	if c.MeasureSettle <= 0 {
		c.MeasureSettle = 12 * time.Millisecond
	}
	c.ByteSettle = mathx.Clamp(c.ByteSettle, time.Millisecond, 100*time.Millisecond)
	c.InitSettle = mathx.Clamp(c.InitSettle, time.Millisecond, 100*time.Millisecond)
	c.MeasureSettle = mathx.Clamp(c.MeasureSettle, time.Millisecond, 100*time.Millisecond)
	d.cfg = c
}

// State returns the current lifecycle state.
func (d *Device) State() State { return d.state }

// InitAirQuality sends the init-air-quality command: command byte, parameter
// byte and checksum byte, each followed by a settle delay. A nonzero
// completion status leaves the driver in the terminal failed state.
func (d *Device) InitAirQuality() error {
	if d.cfg.ByteSettle == 0 {
		d.Configure()
	}
	d.state = StateInitializing

	d.bus.BeginTransmission(d.addr)
	d.bus.WriteByte(cmdInitAirQuality[0])
	time.Sleep(d.cfg.ByteSettle)
	d.bus.WriteByte(cmdInitAirQuality[1])
	time.Sleep(d.cfg.ByteSettle)
	d.bus.WriteByte(crc8(cmdInitAirQuality[:]))
	time.Sleep(d.cfg.ByteSettle)
	st := d.bus.EndTransmission()
	time.Sleep(d.cfg.InitSettle)

	if st != wire.StatusOK {
		d.state = StateFailed
		return &TransmissionError{Status: st}
	}
	d.state = StateReady
	return nil
}

// SoftReset sends the 2-byte reset command. Fire-and-forget: the completion
// status is deliberately not checked.
func (d *Device) SoftReset() {
	if d.cfg.ByteSettle == 0 {
		d.Configure()
	}
	d.bus.BeginTransmission(d.addr)
	d.bus.WriteByte(cmdSoftReset[0])
	time.Sleep(d.cfg.ByteSettle)
	d.bus.WriteByte(cmdSoftReset[1])
	time.Sleep(d.cfg.ByteSettle)
	d.bus.EndTransmission()
	time.Sleep(d.cfg.InitSettle)
}

// Measure triggers one measurement and decodes the 6-byte response:
// co2 word, checksum, tvoc word, checksum, both words big-endian. A nonzero
// command status returns a *TransmissionError with no further bus activity;
// a response shorter than 6 bytes returns ErrShortRead without consuming it.
func (d *Device) Measure() (Measurement, error) {
	if d.state != StateReady {
		return Measurement{}, ErrNotInitialized
	}
	d.state = StateMeasuring
	defer func() { d.state = StateReady }()

	d.bus.BeginTransmission(d.addr)
	d.bus.WriteByte(cmdMeasureAirQuality[0])
	d.bus.WriteByte(cmdMeasureAirQuality[1])
	if st := d.bus.EndTransmission(); st != wire.StatusOK {
		return Measurement{}, &TransmissionError{Status: st}
	}
	time.Sleep(d.cfg.MeasureSettle)

	if n := d.bus.RequestFrom(d.addr, 6); n < 6 {
		return Measurement{}, ErrShortRead
	}
	var resp [6]byte
	for i := range resp {
		resp[i] = d.bus.ReadByte()
	}

	m := Measurement{
		CO2:  uint16(resp[0])<<8 | uint16(resp[1]),
		TVOC: uint16(resp[3])<<8 | uint16(resp[4]),
	}
	if d.cfg.ValidateCRC {
		if crc8(resp[0:2]) != resp[2] || crc8(resp[3:5]) != resp[5] {
			return Measurement{}, ErrChecksum
		}
	}
	return m, nil
}
