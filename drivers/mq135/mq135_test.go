package mq135

import (
	"errors"
	"testing"
)

func TestSensorResistance(t *testing.T) {
	// raw 341 of 1023 is exactly a third of the supply: vOut = 5/3 V,
	// Rs = (5 - 5/3) / (5/3) * RL = 2 * RL.
	rs, err := SensorResistance(341, 5.0, 10.0)
	if err != nil {
		t.Fatalf("SensorResistance: %v", err)
	}
	if rs < 19.999 || rs > 20.001 {
		t.Fatalf("Rs = %v, want 20", rs)
	}
}

func TestSensorResistanceZeroRawGuard(t *testing.T) {
	if _, err := SensorResistance(0, 5.0, 10.0); !errors.Is(err, ErrInvalidSample) {
		t.Fatalf("raw=0 error = %v", err)
	}
}

func TestSensorResistanceFullScale(t *testing.T) {
	// Full-scale sample: vOut equals the supply, Rs is 0.
	rs, err := SensorResistance(1023, 5.0, 10.0)
	if err != nil {
		t.Fatalf("SensorResistance: %v", err)
	}
	if rs != 0 {
		t.Fatalf("Rs at full scale = %v, want 0", rs)
	}
}

func TestConcentrationAtBaseline(t *testing.T) {
	// rs == r0 makes the ratio 1; the curve collapses to coeffA.
	if ppm := ConcentrationPPM(76.63, 76.63, 116.6, 2.769); ppm != 116.6 {
		t.Fatalf("ppm at baseline = %v, want coeffA", ppm)
	}
}

func TestConcentrationMonotonicallyDecreasing(t *testing.T) {
	prev := ConcentrationPPM(1, 76.63, 116.6, 2.769)
	for rs := float32(2); rs <= 200; rs += 1 {
		ppm := ConcentrationPPM(rs, 76.63, 116.6, 2.769)
		if ppm >= prev {
			t.Fatalf("ppm not decreasing at rs=%v: %v -> %v", rs, prev, ppm)
		}
		prev = ppm
	}
}

func TestPurity(t *testing.T) {
	for raw := uint16(1); raw <= 1023; raw += 51 {
		a, err := SensorResistance(raw, 5.0, 10.0)
		if err != nil {
			t.Fatalf("SensorResistance(%d): %v", raw, err)
		}
		b, _ := SensorResistance(raw, 5.0, 10.0)
		if a != b {
			t.Fatalf("SensorResistance(%d) not deterministic: %v vs %v", raw, a, b)
		}
		p1 := ConcentrationPPM(a, 76.63, 116.6, 2.769)
		p2 := ConcentrationPPM(a, 76.63, 116.6, 2.769)
		if p1 != p2 {
			t.Fatalf("ConcentrationPPM(%v) not deterministic", a)
		}
	}
}

// fixedConverter serves a constant raw sample.
type fixedConverter struct{ raw uint16 }

func (f fixedConverter) Configure() {}

func (f fixedConverter) ReadChannel(ch uint8) uint16 { return f.raw }

func TestSensorReadPPM(t *testing.T) {
	cal := Calibration{
		SupplyVoltage:      5.0,
		LoadResistance:     10.0,
		BaselineResistance: 76.63,
		CoeffA:             116.6,
		CoeffB:             2.769,
	}
	s := New(fixedConverter{raw: 512}, 0, cal)
	ppm, err := s.ReadPPM()
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}
	if ppm <= 0 {
		t.Fatalf("ppm = %v, want > 0", ppm)
	}

	s = New(fixedConverter{raw: 0}, 0, cal)
	if _, err := s.ReadPPM(); !errors.Is(err, ErrInvalidSample) {
		t.Fatalf("ReadPPM raw=0 error = %v", err)
	}
}
