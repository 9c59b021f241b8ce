package emulator

import (
	"encoding/binary"
	"io"

	"github.com/ezrec/lc3/cpu"
)

// ReadImage decodes a program image: a stream of big-endian 16-bit
// words, the first of which is the address to load the rest at. Each
// word is byte-swapped to host order.
func ReadImage(r io.Reader) (origin uint16, words []uint16, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}
	if len(data) < 2 {
		err = ErrImageShort
		return
	}
	if len(data)%2 != 0 {
		err = ErrImageOdd
		return
	}

	origin = cpu.Swap16(binary.LittleEndian.Uint16(data[0:2]))

	words = make([]uint16, 0, len(data)/2-1)
	for off := 2; off < len(data); off += 2 {
		words = append(words, cpu.Swap16(binary.LittleEndian.Uint16(data[off:off+2])))
	}

	return
}
