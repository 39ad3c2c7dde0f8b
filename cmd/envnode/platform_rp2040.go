//go:build rp2040

package main

import (
	"io"
	"machine"

	"github.com/chewxy/math32"
	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/dht"

	"github.com/crisanalex08/RasbperryCode/adc"
	"github.com/crisanalex08/RasbperryCode/drivers/mq135"
	"github.com/crisanalex08/RasbperryCode/drivers/sgp30"
	"github.com/crisanalex08/RasbperryCode/services/acquire"
	"github.com/crisanalex08/RasbperryCode/wire"
)

// Fixed pin assignment for the Pico carrier board.
const (
	dhtPin = machine.GP2

	telemetryBaud = 9600
)

type platform struct {
	air acquire.AirQuality
	gas acquire.GasReader
	ht  acquire.HumidityTemperature
	out io.Writer
}

func newPlatform() platform {
	// Two-wire bus for the digital sensor.
	sda := machine.I2C0_SDA_PIN
	scl := machine.I2C0_SCL_PIN
	sda.Configure(machine.PinConfig{Mode: machine.PinI2C})
	scl.Configure(machine.PinConfig{Mode: machine.PinI2C})
	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       sda,
		SCL:       scl,
		Frequency: 100_000,
	})

	// Telemetry UART.
	uart := uartx.UART0
	_ = uart.Configure(uartx.UARTConfig{
		BaudRate: telemetryBaud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})

	conv := adc.NewRP2040()
	conv.Configure()

	air := sgp30.New(wire.NewI2C(machine.I2C0))
	air.Configure()

	return platform{
		air: air,
		gas: mq135.New(conv, gasChannel, gasCalibration),
		ht:  newDHTAdapter(dhtPin),
		out: uart,
	}
}

// dhtAdapter maps the DHT22 driver onto the adapter contract: a failed read
// becomes the NaN sentinel, passed through to the frame unmodified.
type dhtAdapter struct {
	temperature func() (float32, error)
	humidity    func() (float32, error)
}

func newDHTAdapter(pin machine.Pin) dhtAdapter {
	dev := dht.New(pin, dht.DHT22)
	return dhtAdapter{
		temperature: func() (float32, error) {
			if err := dev.ReadMeasurements(); err != nil {
				return 0, err
			}
			return dev.TemperatureFloat(dht.C)
		},
		humidity: func() (float32, error) {
			return dev.HumidityFloat()
		},
	}
}

func (a dhtAdapter) ReadTemperature() float32 {
	t, err := a.temperature()
	if err != nil {
		return math32.NaN()
	}
	return t
}

func (a dhtAdapter) ReadHumidity() float32 {
	h, err := a.humidity()
	if err != nil {
		return math32.NaN()
	}
	return h
}
