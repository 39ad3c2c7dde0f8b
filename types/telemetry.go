// Package types holds the telemetry record shared by the device firmware
// and the host-side collector, together with its serial line codec.
package types

import (
	"github.com/crisanalex08/RasbperryCode/x/fieldfmt"
)

// TelemetryFrame is one acquisition cycle's combined result. It is built
// fresh every cycle and never persisted. Fields are independent: a failure
// in one sensor path never invalidates the others.
type TelemetryFrame struct {
	// GasPPM is the analog gas concentration. Always computed; 0 when the
	// raw sample was invalid.
	GasPPM float32
	// CO2 and TVOC come from the digital sensor. They hold the previous (or
	// zero-initialised) values when the cycle's measurement failed.
	CO2  uint16 // ppm
	TVOC uint16 // ppb
	// TemperatureC and HumidityPct come from the humidity/temperature
	// adapter; NaN is its failure sentinel and is passed through unmodified.
	TemperatureC float32
	HumidityPct  float32
}

// Line renders the frame as the device's serial output line: gas PPM,
// co2, tvoc, temperature, humidity — floats as fixed 2-decimal 8-character
// fields, integers bare, all space separated.
func (f TelemetryFrame) Line() string {
	return fieldfmt.Fixed(f.GasPPM, 8, 2) +
		" " + fieldfmt.Uint(uint32(f.CO2)) +
		" " + fieldfmt.Uint(uint32(f.TVOC)) +
		" " + fieldfmt.Fixed(f.TemperatureC, 8, 2) +
		" " + fieldfmt.Fixed(f.HumidityPct, 8, 2)
}
