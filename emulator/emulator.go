// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	goio "io"
	"os"

	"github.com/ezrec/lc3/cpu"
	"github.com/ezrec/lc3/io"
)

// Emulator is a complete machine: the processor wired to a terminal,
// plus program image loading and the run loop.
type Emulator struct {
	Verbose bool // If set, enables instruction tracing.

	*cpu.Cpu // Reference to the processor simulation.

	Terminal io.Terminal // Keyboard and display collaborator.
}

// NewEmulator creates a machine wired to the given terminal.
func NewEmulator(terminal io.Terminal) (emu *Emulator) {
	emu = &Emulator{
		Cpu:      cpu.NewCpu(terminal),
		Terminal: terminal,
	}

	return
}

// Load reads a program image and places it in memory at its origin.
// The PC stays at the power-on address; conventional images are linked
// to load there.
func (emu *Emulator) Load(r goio.Reader) (err error) {
	origin, words, err := ReadImage(r)
	if err != nil {
		return
	}
	emu.Cpu.Bus.Memory.Load(origin, words)

	return
}

// LoadFile loads a program image from a file.
func (emu *Emulator) LoadFile(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return emu.Load(inf)
}

// Tick executes one instruction. done is set once the machine halts.
// Faults come back wrapped in ErrFault with the faulting address.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	addr := emu.Cpu.Pc
	err = emu.Cpu.Tick()
	if err != nil {
		err = &ErrFault{Addr: addr, Err: err}
		return
	}

	done = !emu.Cpu.Running
	return
}

// Run executes the loaded program until the HALT trap or a fault.
func (emu *Emulator) Run() (err error) {
	emu.Cpu.Running = true

	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
