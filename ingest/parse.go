// Package ingest collects the device's serial output on a host: it parses
// telemetry lines back into frames, fans them out to consumers and writes
// them to InfluxDB.
package ingest

import (
	"errors"
	"strconv"
	"strings"

	"github.com/crisanalex08/RasbperryCode/types"
)

// ErrNotTelemetry marks lines that are valid device output but not frames:
// startup signals and per-cycle diagnostics. Callers log and skip them.
var ErrNotTelemetry = errors.New("ingest: not a telemetry line")

// ParseLine decodes one serial line into a TelemetryFrame. It is the
// inverse of types.TelemetryFrame.Line; NaN fields parse back to NaN.
func ParseLine(line string) (types.TelemetryFrame, error) {
	var f types.TelemetryFrame

	line = strings.TrimSpace(line)
	if line == "" || line == "SGP_OKAY" || line == "SGP_ERROR" ||
		strings.HasPrefix(line, "Transmission Error:") {
		return f, ErrNotTelemetry
	}

	fields := strings.Fields(line)
	if len(fields) != 5 {
		return f, errors.New("ingest: malformed line: " + strconv.Itoa(len(fields)) + " fields")
	}

	gas, err := parseFloat(fields[0])
	if err != nil {
		return f, err
	}
	co2, err := parseUint16(fields[1])
	if err != nil {
		return f, err
	}
	tvoc, err := parseUint16(fields[2])
	if err != nil {
		return f, err
	}
	temp, err := parseFloat(fields[3])
	if err != nil {
		return f, err
	}
	hum, err := parseFloat(fields[4])
	if err != nil {
		return f, err
	}

	f.GasPPM = gas
	f.CO2 = co2
	f.TVOC = tvoc
	f.TemperatureC = temp
	f.HumidityPct = hum
	return f, nil
}

func parseFloat(s string) (float32, error) {
	// strconv accepts "NaN"/"+Inf"/"-Inf", matching the device's sentinel
	// rendering.
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

func parseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
