// Package acquire runs the fixed-rate acquisition cycle: once per period it
// reads the digital multi-gas sensor, the analog gas channel and the
// humidity/temperature adapter, fuses the results into one telemetry frame
// and emits it as a single line.
//
// The loop is strictly sequential and fully synchronous; sensors are never
// polled concurrently. All cross-cycle state (the last good digital
// measurement, the loop-entered flag) lives here, passed to collaborators
// explicitly rather than hidden in package globals.
package acquire

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/crisanalex08/RasbperryCode/drivers/sgp30"
	"github.com/crisanalex08/RasbperryCode/types"
	"github.com/crisanalex08/RasbperryCode/x/fieldfmt"
)

// Startup signal lines, emitted exactly once before the cycle loop.
const (
	readySignal   = "SGP_OKAY"
	failureSignal = "SGP_ERROR"
)

// AirQuality is the digital multi-gas sensor capability.
type AirQuality interface {
	InitAirQuality() error
	SoftReset()
	Measure() (sgp30.Measurement, error)
}

// GasReader is the analog gas concentration capability.
type GasReader interface {
	ReadPPM() (float32, error)
}

// HumidityTemperature is the humidity/temperature adapter contract. Both
// reads are synchronous single-shot calls returning NaN on failure; the
// sentinel is passed through to the frame unmodified.
type HumidityTemperature interface {
	ReadHumidity() float32
	ReadTemperature() float32
}

// Service owns the acquisition cycle.
type Service struct {
	cfg Config
	air AirQuality
	gas GasReader
	ht  HumidityTemperature
	out io.Writer

	// last holds the most recent successful digital measurement; frames
	// emitted after a failed measurement carry these prior (or zero) values.
	last        sgp30.Measurement
	loopEntered bool
}

// New assembles a Service from its collaborators. The analog converter and
// the two-wire bus must already be configured by platform bring-up.
func New(air AirQuality, gas GasReader, ht HumidityTemperature, out io.Writer, cfg Config) *Service {
	return &Service{
		cfg: cfg.withDefaults(),
		air: air,
		gas: gas,
		ht:  ht,
		out: out,
	}
}

// LoopEntered reports whether startup succeeded and the cycle loop began.
func (s *Service) LoopEntered() bool { return s.loopEntered }

// Run performs startup and then cycles until ctx is cancelled. On digital
// sensor init failure it emits the failure signal and returns the error
// without ever entering the loop; the caller owns the fail-stop halt.
func (s *Service) Run(ctx context.Context) error {
	if err := s.startup(); err != nil {
		return err
	}
	for {
		s.runCycle()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.cfg.CyclePeriod):
		}
	}
}

func (s *Service) startup() error {
	if err := s.air.InitAirQuality(); err != nil {
		s.emit(failureSignal)
		return err
	}
	s.emit(readySignal)
	s.air.SoftReset()
	s.loopEntered = true
	return nil
}

// runCycle executes one acquisition cycle: digital measure, analog read,
// humidity/temperature read, then exactly one emitted frame. Sensor paths
// are independent; no failure withholds the frame.
func (s *Service) runCycle() {
	m, err := s.air.Measure()
	ok := err == nil
	if ok {
		s.last = m
	} else {
		var te *sgp30.TransmissionError
		if errors.As(err, &te) {
			s.emit("Transmission Error: " + fieldfmt.Uint(uint32(te.Status)))
		}
	}
	// The success flag is recorded but does not gate or annotate the frame;
	// a failed cycle reuses the prior (or zero-initialised) co2/tvoc values.
	_ = ok

	ppm, err := s.gas.ReadPPM()
	if err != nil {
		ppm = 0
	}

	frame := types.TelemetryFrame{
		GasPPM:       ppm,
		CO2:          s.last.CO2,
		TVOC:         s.last.TVOC,
		TemperatureC: s.ht.ReadTemperature(),
		HumidityPct:  s.ht.ReadHumidity(),
	}
	s.emit(frame.Line())
}

func (s *Service) emit(line string) {
	io.WriteString(s.out, line+"\n")
}
