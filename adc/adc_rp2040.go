//go:build rp2040

package adc

import (
	"device/rp"
	"machine"
)

// RP2040 implements Converter on the RP2040's SAR ADC. Conversions are
// started one at a time and completion is busy-waited on the READY flag;
// the 12-bit result is scaled down to the 10-bit contract range.
type RP2040 struct{}

func NewRP2040() *RP2040 { return &RP2040{} }

func (d *RP2040) Configure() {
	machine.InitADC()
	machine.ADC{Pin: machine.ADC0}.Configure(machine.ADCConfig{})
	machine.ADC{Pin: machine.ADC1}.Configure(machine.ADCConfig{})
	machine.ADC{Pin: machine.ADC2}.Configure(machine.ADCConfig{})
}

func (d *RP2040) ReadChannel(ch uint8) uint16 {
	// Select the input mux and start a single conversion.
	rp.ADC.CS.ReplaceBits(
		uint32(ch)<<rp.ADC_CS_AINSEL_Pos,
		rp.ADC_CS_AINSEL_Msk,
		0,
	)
	rp.ADC.CS.SetBits(rp.ADC_CS_START_ONCE)

	for !rp.ADC.CS.HasBits(rp.ADC_CS_READY) {
	}

	// 12-bit hardware result, 10-bit contract range.
	return uint16(rp.ADC.RESULT.Get()) >> 2
}
