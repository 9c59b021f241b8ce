package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lc3/io"
)

func TestTrapGetc(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu("a")

	// trap getc
	assert.NoError(cpu.Execute(0xF020))
	assert.Equal(uint16('a'), cpu.Reg[R0])
	assert.Equal(FL_POS, cpu.Cond)
	// No echo.
	assert.Empty(output.String())
}

func TestTrapOut(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu("")
	cpu.Reg[R0] = uint16('Z')

	// trap out
	assert.NoError(cpu.Execute(0xF021))
	assert.Equal("Z", output.String())
}

// Only the low byte of r0 is written.
func TestTrapOutLowByte(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu("")
	cpu.Reg[R0] = 0x1241 // 'A' with junk in the high byte

	assert.NoError(cpu.Execute(0xF021))
	assert.Equal("A", output.String())
}

func TestTrapPuts(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu("")
	for n, c := range []uint16{'H', 'e', 'l', 'l', 'o', 0} {
		cpu.Bus.Memory.Write(0x4000+uint16(n), c)
	}
	cpu.Reg[R0] = 0x4000

	// trap puts
	assert.NoError(cpu.Execute(0xF022))
	assert.Equal("Hello", output.String())
}

func TestTrapIn(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu("x")

	// trap in: prompt, read, echo
	assert.NoError(cpu.Execute(0xF023))
	assert.Equal(uint16('x'), cpu.Reg[R0])
	assert.Equal(FL_POS, cpu.Cond)
	assert.Equal("Enter a character: x", output.String())
}

func TestTrapPutsp(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu("")
	// Two characters per word, low byte first; the final word carries
	// a single character in its low byte.
	packed := []uint16{
		uint16('e')<<8 | uint16('H'),
		uint16('l')<<8 | uint16('l'),
		uint16('o'),
		0,
	}
	for n, word := range packed {
		cpu.Bus.Memory.Write(0x4000+uint16(n), word)
	}
	cpu.Reg[R0] = 0x4000

	// trap putsp
	assert.NoError(cpu.Execute(0xF024))
	assert.Equal("Hello", output.String())
}

func TestTrapHalt(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu("")
	cpu.Running = true

	// trap halt
	assert.NoError(cpu.Execute(0xF025))
	assert.False(cpu.Running)
	assert.Equal("HALT\n", output.String())
}

// The trap calling convention saves the post-fetch PC in r7.
func TestTrapSavesReturnAddress(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu("q")
	cpu.Pc = 0x3000
	cpu.Bus.Memory.Write(0x3000, 0xF020) // trap getc

	assert.NoError(cpu.Tick())
	assert.Equal(uint16(0x3001), cpu.Reg[R7])
}

func TestTrapIllegalVector(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu("")
	cpu.Pc = 0x3000
	cpu.Bus.Memory.Write(0x3000, 0xF099) // trap 0x99: undefined

	err := cpu.Tick()
	assert.ErrorIs(err, ErrTrap{})

	var et ErrTrap
	if assert.ErrorAs(err, &et) {
		assert.Equal(uint16(0x3000), et.Addr)
		assert.Equal(uint16(0x99), et.Vector)
	}
}

// An aborted keystroke read must not leave r0 partially updated.
func TestTrapGetcAborted(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu("")
	cpu.Reg[R0] = 0x1234
	cpu.Cond = FL_POS

	err := cpu.Execute(0xF020)
	assert.ErrorIs(err, io.ErrInputAborted)
	assert.Equal(uint16(0x1234), cpu.Reg[R0])
	assert.Equal(FL_POS, cpu.Cond)
}
