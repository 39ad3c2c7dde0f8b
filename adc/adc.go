// Package adc exposes the analog channel reader used by the gas sensor
// front-end: one-time configuration, then per-channel triggered conversions
// that busy-wait until the converter reports completion.
package adc

// FullScale is the top of the raw sample range. The acquisition model is
// written against a 10-bit converter, so samples are 0..1023 regardless of
// the native resolution of the hardware behind the Converter.
const FullScale = 1023

// Converter performs single-shot analog conversions. Configure must be
// called once before the first ReadChannel; a conversion always completes,
// so there is no error path.
type Converter interface {
	Configure()
	ReadChannel(ch uint8) uint16
}
