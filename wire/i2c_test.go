package wire

import (
	"bytes"
	"errors"
	"testing"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

// fakeI2C records write transactions and serves scripted read bytes.
type fakeI2C struct {
	writes   [][]byte
	lastAddr uint16
	response []byte
	err      error
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.lastAddr = addr
	if f.err != nil {
		return f.err
	}
	if len(w) > 0 {
		f.writes = append(f.writes, append([]byte(nil), w...))
	}
	if len(r) > 0 {
		copy(r, f.response)
	}
	return nil
}

func TestI2C_BufferedWrite(t *testing.T) {
	fake := &fakeI2C{}
	c := NewI2C(fake)

	c.BeginTransmission(0x58)
	c.WriteByte(0x20)
	c.WriteByte(0x08)
	if st := c.EndTransmission(); st != StatusOK {
		t.Fatalf("EndTransmission = %v, want ok", st)
	}
	if fake.lastAddr != 0x58 {
		t.Fatalf("addr = %#x, want 0x58", fake.lastAddr)
	}
	if len(fake.writes) != 1 || !bytes.Equal(fake.writes[0], []byte{0x20, 0x08}) {
		t.Fatalf("writes = %v, want one [20 08] transaction", fake.writes)
	}
}

func TestI2C_EndTransmissionError(t *testing.T) {
	fake := &fakeI2C{err: errors.New("nack")}
	c := NewI2C(fake)

	c.BeginTransmission(0x58)
	c.WriteByte(0x20)
	if st := c.EndTransmission(); st == StatusOK {
		t.Fatal("EndTransmission reported success for failed transaction")
	}
}

func TestI2C_WriteOverflow(t *testing.T) {
	fake := &fakeI2C{}
	c := NewI2C(fake)

	c.BeginTransmission(0x58)
	for i := 0; i < maxTransfer+1; i++ {
		c.WriteByte(byte(i))
	}
	if st := c.EndTransmission(); st != StatusDataTooLong {
		t.Fatalf("EndTransmission = %v, want data too long", st)
	}
	if len(fake.writes) != 0 {
		t.Fatalf("overflowed transaction reached the bus: %v", fake.writes)
	}
}

func TestI2C_RequestAndRead(t *testing.T) {
	fake := &fakeI2C{response: []byte{0x01, 0x90, 0xAA}}
	c := NewI2C(fake)

	if n := c.RequestFrom(0x58, 3); n != 3 {
		t.Fatalf("RequestFrom = %d, want 3", n)
	}
	if c.Available() != 3 {
		t.Fatalf("Available = %d, want 3", c.Available())
	}
	got := []byte{c.ReadByte(), c.ReadByte(), c.ReadByte()}
	if !bytes.Equal(got, []byte{0x01, 0x90, 0xAA}) {
		t.Fatalf("read %v", got)
	}
	if c.Available() != 0 {
		t.Fatalf("Available after drain = %d", c.Available())
	}
	// Reading past the end yields zero, not a panic.
	if b := c.ReadByte(); b != 0 {
		t.Fatalf("ReadByte past end = %#x", b)
	}
}

func TestI2C_RequestFailure(t *testing.T) {
	fake := &fakeI2C{err: errors.New("bus stuck")}
	c := NewI2C(fake)

	if n := c.RequestFrom(0x58, 6); n != 0 {
		t.Fatalf("RequestFrom on failed bus = %d, want 0", n)
	}
	if c.Available() != 0 {
		t.Fatalf("Available = %d, want 0", c.Available())
	}
}
