package emulator

import (
	"errors"

	"github.com/ezrec/lc3/translate"
)

var f = translate.From

var (
	// Load faults, reported before execution begins.
	ErrImageShort = errors.New(f("image too short"))
	ErrImageOdd   = errors.New(f("image has a trailing half-word"))
)

// ErrFault wraps an execution fault with the address of the faulting
// instruction.
type ErrFault struct {
	Addr uint16
	Err  error
}

func (err *ErrFault) Error() string {
	return f("fault at 0x%04x: %v", err.Addr, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
