package ingest

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crisanalex08/RasbperryCode/types"
)

func TestPoint(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	f := types.TelemetryFrame{
		GasPPM:       103.5,
		CO2:          400,
		TVOC:         100,
		TemperatureC: 22.3,
		HumidityPct:  45.5,
	}
	p := Point(f, "balcony", ts)

	assert.Equal(t, measurement, p.Name())
	assert.Equal(t, ts, p.Time())

	fields := map[string]interface{}{}
	for _, fl := range p.FieldList() {
		fields[fl.Key] = fl.Value
	}
	require.Len(t, fields, 5)
	assert.Equal(t, int64(400), fields["co2_ppm"])
	assert.Equal(t, int64(100), fields["tvoc_ppb"])
	assert.InDelta(t, 22.3, fields["temperature_c"], 0.001)

	tags := map[string]string{}
	for _, tg := range p.TagList() {
		tags[tg.Key] = tg.Value
	}
	assert.Equal(t, "balcony", tags["device"])
}

func TestPointOmitsNaNFields(t *testing.T) {
	f := types.TelemetryFrame{
		GasPPM:       103.5,
		TemperatureC: math32.NaN(),
		HumidityPct:  math32.NaN(),
	}
	p := Point(f, "balcony", time.Now())

	for _, fl := range p.FieldList() {
		assert.NotEqual(t, "temperature_c", fl.Key)
		assert.NotEqual(t, "humidity_pct", fl.Key)
	}
	assert.Len(t, p.FieldList(), 3)
}
