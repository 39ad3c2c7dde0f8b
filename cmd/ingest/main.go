// ingest tails the telemetry node's serial line on a host, parses the
// per-cycle frames and forwards them to InfluxDB.
package main

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/tarm/serial"

	"github.com/crisanalex08/RasbperryCode/ingest"
)

func main() {
	cfgPath := "./config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := ingest.ReadConfig(cfgPath)
	if err != nil {
		slog.Error("read config", "path", cfgPath, "err", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel())

	port, err := serial.OpenPort(&serial.Config{
		Name: cfg.Serial.Port,
		Baud: cfg.Serial.BaudRate,
	})
	if err != nil {
		slog.Error("open serial port", "port", cfg.Serial.Port, "err", err)
		os.Exit(1)
	}
	defer port.Close()

	writer := ingest.NewWriter(cfg)
	defer writer.Close()

	feed := ingest.NewFeed(64)
	frames := feed.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for frame := range frames {
			if err := writer.Write(context.Background(), frame, time.Now()); err != nil {
				slog.Error("influx write", "err", err)
			}
		}
	}()

	slog.Info("collecting", "port", cfg.Serial.Port, "baud", cfg.Serial.BaudRate)
	sc := bufio.NewScanner(port)
	for sc.Scan() {
		frame, err := ingest.ParseLine(sc.Text())
		switch {
		case errors.Is(err, ingest.ErrNotTelemetry):
			// Startup signals and diagnostics are logged, not stored.
			slog.Info("device", "line", sc.Text())
		case err != nil:
			slog.Warn("skipping malformed line", "err", err)
		default:
			slog.Debug("frame", "co2", frame.CO2, "tvoc", frame.TVOC, "gas_ppm", frame.GasPPM)
			feed.Publish(frame)
		}
	}
	feed.Close()
	<-done
	if err := sc.Err(); err != nil {
		slog.Error("serial read", "err", err)
		os.Exit(1)
	}
}
