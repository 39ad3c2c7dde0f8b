package ingest

import (
	"context"
	"math"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/crisanalex08/RasbperryCode/types"
)

// Measurement name for telemetry points.
const measurement = "air_quality"

// Writer forwards frames to InfluxDB.
type Writer struct {
	client influxdb2.Client
	api    api.WriteAPIBlocking
	device string
}

// NewWriter opens a blocking write API against the configured bucket.
func NewWriter(cfg *Config) *Writer {
	client := influxdb2.NewClient(cfg.Influx.URL, cfg.Influx.Token)
	return &Writer{
		client: client,
		api:    client.WriteAPIBlocking(cfg.Influx.Org, cfg.Influx.Bucket),
		device: cfg.Device.ID,
	}
}

// Write sends one frame as a point stamped with ts.
func (w *Writer) Write(ctx context.Context, f types.TelemetryFrame, ts time.Time) error {
	return w.api.WritePoint(ctx, Point(f, w.device, ts))
}

// Close releases the underlying client.
func (w *Writer) Close() {
	w.client.Close()
}

// Point converts a frame into an InfluxDB point. NaN fields (the device's
// sensor-failure sentinel) are omitted: the server rejects NaN values and
// the remaining fields are still worth keeping.
func Point(f types.TelemetryFrame, device string, ts time.Time) *write.Point {
	fields := map[string]interface{}{
		"gas_ppm":  float64(f.GasPPM),
		"co2_ppm":  int64(f.CO2),
		"tvoc_ppb": int64(f.TVOC),
	}
	if !math.IsNaN(float64(f.TemperatureC)) {
		fields["temperature_c"] = float64(f.TemperatureC)
	}
	if !math.IsNaN(float64(f.HumidityPct)) {
		fields["humidity_pct"] = float64(f.HumidityPct)
	}
	return influxdb2.NewPoint(
		measurement,
		map[string]string{"device": device},
		fields,
		ts,
	)
}
