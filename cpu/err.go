package cpu

import (
	"errors"

	"github.com/ezrec/lc3/translate"
)

var f = translate.From

var (
	// ErrNoKeyboard reports a keyboard data register read with no
	// terminal attached to the bus.
	ErrNoKeyboard = errors.New(f("no keyboard attached"))
)

// ErrOpcode is an illegal instruction fault: one of the two reserved
// encodings (RTI, 0xD) reached the dispatcher.
type ErrOpcode struct {
	Addr        uint16
	Instruction Instruction
}

func (eo ErrOpcode) Error() string {
	return f("illegal opcode %d (0x%04x) at 0x%04x",
		uint16(eo.Instruction.Opcode()), uint16(eo.Instruction), eo.Addr)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrTrap is an undefined trap vector fault.
type ErrTrap struct {
	Addr   uint16
	Vector uint16
}

func (et ErrTrap) Error() string {
	return f("illegal trap vector 0x%02x at 0x%04x", et.Vector, et.Addr)
}

func (et ErrTrap) Is(err error) (ok bool) {
	_, ok = err.(ErrTrap)
	return
}
