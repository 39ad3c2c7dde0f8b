package sgp30

// crc8 computes the sensor's CRC-8 (polynomial 0x31, init 0xFF, no final
// XOR) over a data word. Each response word carries one as its third byte.
func crc8(data []byte) byte {
	crc := byte(0xFF)
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
