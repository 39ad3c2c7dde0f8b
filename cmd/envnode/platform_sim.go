//go:build !rp2040

package main

import (
	"io"
	"os"

	"github.com/crisanalex08/RasbperryCode/drivers/mq135"
	"github.com/crisanalex08/RasbperryCode/drivers/sgp30"
	"github.com/crisanalex08/RasbperryCode/services/acquire"
	"github.com/crisanalex08/RasbperryCode/wire"
)

// Host build: scripted sensors on stdout, so the acquisition loop can be
// exercised without the board attached.

type platform struct {
	air acquire.AirQuality
	gas acquire.GasReader
	ht  acquire.HumidityTemperature
	out io.Writer
}

func newPlatform() platform {
	return platform{
		air: sgp30ready(),
		gas: mq135.New(&simConverter{}, gasChannel, gasCalibration),
		ht:  &simHT{},
		out: os.Stdout,
	}
}

func sgp30ready() *sgp30.Device {
	d := sgp30.New(&simBus{})
	d.Configure()
	return d
}

// simBus answers every command successfully and serves a slowly drifting
// measure response.
type simBus struct {
	tick uint16
	resp [6]byte
	rpos int
}

func (b *simBus) BeginTransmission(addr uint16) {}

func (b *simBus) WriteByte(x byte) {}

func (b *simBus) EndTransmission() wire.Status { return wire.StatusOK }

func (b *simBus) RequestFrom(addr uint16, n int) int {
	b.tick++
	co2 := 400 + b.tick%60
	tvoc := 100 + b.tick%25
	b.resp = [6]byte{
		byte(co2 >> 8), byte(co2), 0x00,
		byte(tvoc >> 8), byte(tvoc), 0x00,
	}
	b.rpos = 0
	return len(b.resp)
}

func (b *simBus) Available() int { return len(b.resp) - b.rpos }

func (b *simBus) ReadByte() byte {
	x := b.resp[b.rpos]
	b.rpos++
	return x
}

// simConverter wanders around mid-scale.
type simConverter struct{ tick uint16 }

func (c *simConverter) Configure() {}

func (c *simConverter) ReadChannel(ch uint8) uint16 {
	c.tick++
	return 480 + c.tick%64
}

// simHT serves a fixed indoor climate.
type simHT struct{}

func (simHT) ReadHumidity() float32 { return 45.5 }

func (simHT) ReadTemperature() float32 { return 22.3 }
