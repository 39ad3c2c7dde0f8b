// Package wire defines the two-wire transport contract the sensor drivers
// are written against. The shape mirrors the classic buffered begin/write/
// end transaction model: writes accumulate between BeginTransmission and
// EndTransmission and are flushed as one bus transaction whose completion
// status is reported by EndTransmission.
//
// All operations are synchronous and blocking; a transaction that never
// completes hangs the caller. There is no shared access: exactly one driver
// owns a Bus at a time.
package wire

// Status is the completion code of a two-wire transaction. Zero means
// success; nonzero codes identify the failure class.
type Status uint8

const (
	StatusOK          Status = 0
	StatusDataTooLong Status = 1
	StatusAddrNACK    Status = 2
	StatusDataNACK    Status = 3
	StatusError       Status = 4 // generic fallback
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDataTooLong:
		return "data too long"
	case StatusAddrNACK:
		return "address nack"
	case StatusDataNACK:
		return "data nack"
	default:
		return "error"
	}
}

// Bus is the transport capability consumed by the digital sensor driver.
type Bus interface {
	// BeginTransmission starts buffering a write transaction to addr.
	BeginTransmission(addr uint16)
	// WriteByte appends one byte to the pending write transaction.
	WriteByte(b byte)
	// EndTransmission flushes the buffered bytes as one transaction and
	// returns its completion status.
	EndTransmission() Status
	// RequestFrom reads up to n bytes from addr and returns how many are
	// available for ReadByte.
	RequestFrom(addr uint16, n int) int
	// Available returns the number of unread response bytes.
	Available() int
	// ReadByte consumes and returns the next response byte, or 0 when none
	// remain.
	ReadByte() byte
}
