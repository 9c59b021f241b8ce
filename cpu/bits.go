package cpu

// SignExtend treats the low bits of x as a two's-complement value of the
// given width and extends its sign bit through the full 16-bit word.
// Instruction encodings use widths 5, 6, 9 and 11.
func SignExtend(x uint16, bits uint) uint16 {
	if (x>>(bits-1))&1 != 0 {
		x |= 0xFFFF << bits
	}
	return x
}

// Swap16 exchanges the high and low bytes of a word. Program images are
// stored big-endian; the loader swaps each word to host order.
func Swap16(x uint16) uint16 {
	return (x << 8) | (x >> 8)
}
