// envnode is the telemetry node firmware: one acquisition cycle per second,
// one line per cycle on the serial output. Hardware wiring lives in the
// per-platform files; this entry is shared.
package main

import (
	"context"
	"time"

	"github.com/crisanalex08/RasbperryCode/drivers/mq135"
	"github.com/crisanalex08/RasbperryCode/services/acquire"
)

// MQ-135 CO2-curve constants for the stock 10 kΩ load board, with the
// clean-air baseline measured on this unit.
var gasCalibration = mq135.Calibration{
	SupplyVoltage:      5.0,
	LoadResistance:     10.0,
	BaselineResistance: 76.63,
	CoeffA:             116.6021,
	CoeffB:             2.769034,
}

const gasChannel = 0

func main() {
	// Let the serial link enumerate before the first line.
	time.Sleep(2 * time.Second)

	p := newPlatform()
	svc := acquire.New(p.air, p.gas, p.ht, p.out, acquire.Config{
		CyclePeriod: time.Second,
	})

	// Run returns only when digital sensor init fails; the failure signal is
	// already on the wire at that point. Fail-stop: park until reset.
	_ = svc.Run(context.Background())
	halt()
}

// halt parks the firmware forever. Only a power cycle or watchdog reset
// recovers a node whose digital sensor failed to initialise.
func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
