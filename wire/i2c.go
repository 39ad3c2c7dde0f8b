package wire

import (
	"tinygo.org/x/drivers"
)

// maxTransfer bounds a single buffered transaction. Commands on this bus are
// a handful of bytes; responses are at most a few words plus checksums.
const maxTransfer = 32

// I2C implements Bus on top of a tinygo driver I2C connection. Written
// bytes are buffered and sent as a single Tx on EndTransmission; RequestFrom
// performs one read Tx into an internal buffer consumed by ReadByte.
type I2C struct {
	bus drivers.I2C

	addr uint16
	w    [maxTransfer]byte
	wn   int
	ovf  bool

	r     [maxTransfer]byte
	rn    int
	rhead int
}

// NewI2C wraps an already configured I2C connection.
func NewI2C(bus drivers.I2C) *I2C {
	return &I2C{bus: bus}
}

func (c *I2C) BeginTransmission(addr uint16) {
	c.addr = addr
	c.wn = 0
	c.ovf = false
}

func (c *I2C) WriteByte(b byte) {
	if c.wn >= len(c.w) {
		c.ovf = true
		return
	}
	c.w[c.wn] = b
	c.wn++
}

func (c *I2C) EndTransmission() Status {
	n := c.wn
	c.wn = 0
	if c.ovf {
		c.ovf = false
		return StatusDataTooLong
	}
	if err := c.bus.Tx(c.addr, c.w[:n], nil); err != nil {
		return StatusError
	}
	return StatusOK
}

func (c *I2C) RequestFrom(addr uint16, n int) int {
	c.rhead = 0
	c.rn = 0
	if n <= 0 || n > len(c.r) {
		return 0
	}
	if err := c.bus.Tx(addr, nil, c.r[:n]); err != nil {
		return 0
	}
	c.rn = n
	return n
}

func (c *I2C) Available() int {
	return c.rn - c.rhead
}

func (c *I2C) ReadByte() byte {
	if c.rhead >= c.rn {
		return 0
	}
	b := c.r[c.rhead]
	c.rhead++
	return b
}
