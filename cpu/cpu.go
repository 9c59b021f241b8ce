// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"log"

	"github.com/ezrec/lc3/io"
)

// Terminal is the console capability injected into the machine.
type Terminal io.Terminal

// General-purpose register indexes.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
)

// PC_START is the power-on program counter: the bottom of user space,
// where conventional program images are linked to load.
const PC_START = uint16(0x3000)

// Flag is a condition-code register value. Exactly one flag is set
// after every instruction that writes a general-purpose register.
type Flag uint16

const (
	FL_POS = Flag(1 << 0)
	FL_ZRO = Flag(1 << 1)
	FL_NEG = Flag(1 << 2)
)

func (fl Flag) String() string {
	switch fl {
	case FL_POS:
		return "p"
	case FL_ZRO:
		return "z"
	case FL_NEG:
		return "n"
	}
	return "?"
}

// Cpu is the processor state: the register file, condition flags, and
// the bus to memory and the keyboard device registers. One Cpu owns its
// state exclusively; there is no concurrent mutation.
type Cpu struct {
	Verbose bool // Set to enable instruction tracing.

	Reg  [8]uint16 // General-purpose registers r0-r7.
	Pc   uint16    // Address of the next instruction to fetch.
	Cond Flag      // Condition flags from the last register write.

	Bus *Bus // Memory and device access.

	Running bool // Cleared by the HALT trap.
	Ticks   int  // Instructions executed since reset.

	terminal Terminal
}

// NewCpu creates a processor wired to a terminal for the keyboard
// device registers and the console traps.
func NewCpu(terminal Terminal) (cpu *Cpu) {
	cpu = &Cpu{
		Bus:      &Bus{Memory: &Memory{}, Keyboard: terminal},
		terminal: terminal,
	}
	cpu.Reset()

	return
}

// Reset returns the machine to its power-on state: zeroed registers and
// memory, PC at the bottom of user space, ZERO condition flag.
func (cpu *Cpu) Reset() {
	clear(cpu.Reg[:])
	cpu.Pc = PC_START
	cpu.Cond = FL_ZRO
	cpu.Bus.Memory.Reset()
	cpu.Running = false
	cpu.Ticks = 0
}

// Tick executes a single fetch-decode-execute cycle. The PC increments
// after the fetch and before execution: return addresses saved by JSR
// and TRAP point at the following instruction.
func (cpu *Cpu) Tick() (err error) {
	addr := cpu.Pc
	word, err := cpu.Bus.Read(addr)
	if err != nil {
		return
	}
	cpu.Pc++

	instruction := Instruction(word)
	if cpu.Verbose {
		log.Printf("%04x: %v", addr, instruction)
	}

	err = cpu.Execute(instruction)
	cpu.Ticks++

	return
}

// Run executes instructions until the HALT trap stops the machine or a
// fault occurs.
func (cpu *Cpu) Run() (err error) {
	cpu.Running = true
	for cpu.Running {
		err = cpu.Tick()
		if err != nil {
			cpu.Running = false
			return
		}
	}

	return
}

// Execute runs a single instruction against the machine state. All
// register and address arithmetic wraps at 16 bits; the only faults are
// the two reserved opcodes, an undefined trap vector, and an aborted
// keystroke read. A faulting instruction leaves no register partially
// updated.
func (cpu *Cpu) Execute(instruction Instruction) (err error) {
	switch instruction.Opcode() {
	case OP_BR:
		if instruction.Nzp()&uint16(cpu.Cond) != 0 {
			cpu.Pc += instruction.PCOffset9()
		}

	case OP_ADD:
		if instruction.ImmBit() {
			cpu.Reg[instruction.DR()] = cpu.Reg[instruction.SR1()] + instruction.Imm5()
		} else {
			cpu.Reg[instruction.DR()] = cpu.Reg[instruction.SR1()] + cpu.Reg[instruction.SR2()]
		}
		cpu.updateFlags(instruction.DR())

	case OP_LD:
		var value uint16
		value, err = cpu.Bus.Read(cpu.Pc + instruction.PCOffset9())
		if err != nil {
			return
		}
		cpu.Reg[instruction.DR()] = value
		cpu.updateFlags(instruction.DR())

	case OP_ST:
		cpu.Bus.Write(cpu.Pc+instruction.PCOffset9(), cpu.Reg[instruction.DR()])

	case OP_JSR:
		cpu.Reg[R7] = cpu.Pc
		if instruction.LongBit() {
			cpu.Pc += instruction.PCOffset11()
		} else {
			cpu.Pc = cpu.Reg[instruction.BaseR()]
		}

	case OP_AND:
		if instruction.ImmBit() {
			cpu.Reg[instruction.DR()] = cpu.Reg[instruction.SR1()] & instruction.Imm5()
		} else {
			cpu.Reg[instruction.DR()] = cpu.Reg[instruction.SR1()] & cpu.Reg[instruction.SR2()]
		}
		cpu.updateFlags(instruction.DR())

	case OP_LDR:
		var value uint16
		value, err = cpu.Bus.Read(cpu.Reg[instruction.BaseR()] + instruction.Offset6())
		if err != nil {
			return
		}
		cpu.Reg[instruction.DR()] = value
		cpu.updateFlags(instruction.DR())

	case OP_STR:
		cpu.Bus.Write(cpu.Reg[instruction.BaseR()]+instruction.Offset6(), cpu.Reg[instruction.DR()])

	case OP_NOT:
		cpu.Reg[instruction.DR()] = ^cpu.Reg[instruction.SR1()]
		cpu.updateFlags(instruction.DR())

	case OP_LDI:
		var indirect, value uint16
		indirect, err = cpu.Bus.Read(cpu.Pc + instruction.PCOffset9())
		if err != nil {
			return
		}
		value, err = cpu.Bus.Read(indirect)
		if err != nil {
			return
		}
		cpu.Reg[instruction.DR()] = value
		cpu.updateFlags(instruction.DR())

	case OP_STI:
		var indirect uint16
		indirect, err = cpu.Bus.Read(cpu.Pc + instruction.PCOffset9())
		if err != nil {
			return
		}
		cpu.Bus.Write(indirect, cpu.Reg[instruction.DR()])

	case OP_JMP:
		// jmp r7 is the conventional subroutine return.
		cpu.Pc = cpu.Reg[instruction.BaseR()]

	case OP_LEA:
		cpu.Reg[instruction.DR()] = cpu.Pc + instruction.PCOffset9()
		cpu.updateFlags(instruction.DR())

	case OP_TRAP:
		cpu.Reg[R7] = cpu.Pc
		err = cpu.trap(instruction.Vector())

	case OP_RTI, OP_RES:
		err = ErrOpcode{Addr: cpu.Pc - 1, Instruction: instruction}
	}

	return
}

// updateFlags sets the condition-code register from a general-purpose
// register's new value. Called by every handler that writes one.
func (cpu *Cpu) updateFlags(r uint16) {
	switch {
	case cpu.Reg[r] == 0:
		cpu.Cond = FL_ZRO
	case cpu.Reg[r]>>15 != 0:
		cpu.Cond = FL_NEG
	default:
		cpu.Cond = FL_POS
	}
}
