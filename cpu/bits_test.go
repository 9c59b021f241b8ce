package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignExtend(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		x    uint16
		bits uint
		want uint16
	}){
		{"w5_neg", 0b10001, 5, 0xFFF1},
		{"w5_pos", 0b00001, 5, 0x0001},
		{"w5_minus1", 0b11111, 5, 0xFFFF},
		{"w5_min", 0b10000, 5, 0xFFF0},
		{"w6_neg", 0x20, 6, 0xFFE0},
		{"w6_pos", 0x1F, 6, 0x001F},
		{"w9_neg", 0x100, 9, 0xFF00},
		{"w9_pos", 0x0FF, 9, 0x00FF},
		{"w11_neg", 0x400, 11, 0xFC00},
		{"w11_pos", 0x3FF, 11, 0x03FF},
		{"w11_minus1", 0x7FF, 11, 0xFFFF},
		{"zero", 0, 9, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.want, SignExtend(entry.x, entry.bits), entry.name)
	}
}

// Every representable value of every field width must match the
// mathematical two's-complement extension.
func TestSignExtendExhaustive(t *testing.T) {
	assert := assert.New(t)

	for _, bits := range []uint{5, 6, 9, 11} {
		for x := uint16(0); x < 1<<bits; x++ {
			want := int32(x)
			if x>>(bits-1) != 0 {
				want -= int32(1) << bits
			}
			if !assert.Equal(uint16(int16(want)), SignExtend(x, bits), "width %d value 0x%x", bits, x) {
				return
			}
		}
	}
}

func TestSwap16(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint16(0x3412), Swap16(0x1234))
	assert.Equal(uint16(0x00FF), Swap16(0xFF00))
	assert.Equal(uint16(0x0000), Swap16(0x0000))
	assert.Equal(uint16(0xFFFF), Swap16(0xFFFF))
}
