package tftspi

// ColorTo565 packs 8-bit channels into RGB565, dropping the low bits of each.
func ColorTo565(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3)
}

// appendPixel appends c in the wire format: two bytes big-endian, or three
// bytes of 6-bit channels left aligned when wide.
func appendPixel(dst []byte, c uint16, wide bool) []byte {
	if wide {
		return append(dst, byte(c>>8)&0xF8, byte(c>>3)&0xFC, byte(c<<3))
	}
	return append(dst, byte(c>>8), byte(c))
}
