// Package fieldfmt renders numeric telemetry fields without fmt, which is
// too heavy for the MCU hot path. Floats are rendered fixed-point with a
// given precision and right-aligned into a fixed-width field.
package fieldfmt

import (
	"github.com/chewxy/math32"
)

// Fixed renders v with prec decimal places, right-aligned to width.
// NaN and infinities render as "NaN", "+Inf", "-Inf" in the same field.
func Fixed(v float32, width, prec int) string {
	var s string
	switch {
	case math32.IsNaN(v):
		s = "NaN"
	case math32.IsInf(v, 1):
		s = "+Inf"
	case math32.IsInf(v, -1):
		s = "-Inf"
	default:
		s = fixed(float64(v), prec)
	}
	return pad(s, width)
}

// Uint renders v in decimal.
func Uint(v uint32) string {
	return utoa(uint64(v))
}

func fixed(v float64, prec int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	scale := int64(1)
	for i := 0; i < prec; i++ {
		scale *= 10
	}
	// Round half away from zero on the scaled value.
	n := int64(v*float64(scale) + 0.5)
	s := utoa(uint64(n / scale))
	if prec > 0 {
		f := utoa(uint64(n % scale))
		for len(f) < prec {
			f = "0" + f
		}
		s += "." + f
	}
	if neg {
		s = "-" + s
	}
	return s
}

func utoa(u uint64) string {
	if u == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	return string(buf[i:])
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	var buf [16]byte
	n := width - len(s)
	if n > len(buf) {
		n = len(buf)
	}
	for i := 0; i < n; i++ {
		buf[i] = ' '
	}
	return string(buf[:n]) + s
}
