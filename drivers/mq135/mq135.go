// Package mq135 converts raw analog samples from an MQ-series gas sensor
// into a gas concentration. The conversion is a pure two-stage transform:
// raw sample → sensor resistance (voltage divider against a load resistor),
// then resistance → PPM through an empirical power-law calibration curve.
package mq135

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/crisanalex08/RasbperryCode/adc"
)

// ErrInvalidSample marks a raw sample of 0: the divider output would be 0 V
// and the resistance undefined. Callers skip the concentration for that
// sample instead of dividing by zero.
var ErrInvalidSample = errors.New("mq135: invalid raw sample")

// Calibration holds the constants of one sensor unit. These come from the
// datasheet curve fit and a clean-air baseline measurement, never from
// runtime computation.
type Calibration struct {
	SupplyVoltage      float32 // divider supply, volts
	LoadResistance     float32 // RL, kΩ
	BaselineResistance float32 // R0, clean-air resistance, kΩ
	CoeffA             float32 // power-law scale
	CoeffB             float32 // power-law exponent, > 0
}

// SensorResistance derives the gas-sensitive element's resistance from a raw
// sample. The result shares the unit of loadResistance.
func SensorResistance(raw uint16, supplyVoltage, loadResistance float32) (float32, error) {
	if raw == 0 {
		return 0, ErrInvalidSample
	}
	vOut := float32(raw) / adc.FullScale * supplyVoltage
	return (supplyVoltage - vOut) / vOut * loadResistance, nil
}

// ConcentrationPPM evaluates the calibration curve ppm = a * (rs/r0)^(-b).
// Monotonically decreasing in rs for b > 0.
func ConcentrationPPM(rs, baselineResistance, coeffA, coeffB float32) float32 {
	ratio := rs / baselineResistance
	return coeffA * math32.Pow(ratio, -coeffB)
}

// Sensor binds the conversion pipeline to one analog channel.
type Sensor struct {
	conv adc.Converter
	ch   uint8
	cal  Calibration
}

// New creates a Sensor. The converter must already be configured.
func New(conv adc.Converter, channel uint8, cal Calibration) *Sensor {
	return &Sensor{conv: conv, ch: channel, cal: cal}
}

// ReadPPM samples the channel and runs the full conversion. A raw sample of
// 0 returns ErrInvalidSample.
func (s *Sensor) ReadPPM() (float32, error) {
	raw := s.conv.ReadChannel(s.ch)
	rs, err := SensorResistance(raw, s.cal.SupplyVoltage, s.cal.LoadResistance)
	if err != nil {
		return 0, err
	}
	return ConcentrationPPM(rs, s.cal.BaselineResistance, s.cal.CoeffA, s.cal.CoeffB), nil
}
