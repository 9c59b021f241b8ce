package cpu

import (
	"fmt"
)

// Opcode is the 4-bit operation selector in bits 15-12 of an instruction.
type Opcode uint16

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_BR   = Opcode(0x0) // br
	OP_ADD  = Opcode(0x1) // add
	OP_LD   = Opcode(0x2) // ld
	OP_ST   = Opcode(0x3) // st
	OP_JSR  = Opcode(0x4) // jsr
	OP_AND  = Opcode(0x5) // and
	OP_LDR  = Opcode(0x6) // ldr
	OP_STR  = Opcode(0x7) // str
	OP_RTI  = Opcode(0x8) // rti
	OP_NOT  = Opcode(0x9) // not
	OP_LDI  = Opcode(0xA) // ldi
	OP_STI  = Opcode(0xB) // sti
	OP_JMP  = Opcode(0xC) // jmp
	OP_RES  = Opcode(0xD) // res
	OP_LEA  = Opcode(0xE) // lea
	OP_TRAP = Opcode(0xF) // trap
)

// Instruction is a single fetched 16-bit instruction word. All field
// extraction is local to the accessors; which fields are meaningful
// depends on the opcode.
type Instruction uint16

// Opcode returns the operation selector in bits 15-12.
func (in Instruction) Opcode() Opcode {
	return Opcode(in >> 12)
}

// DR returns the destination register field in bits 11-9. Store
// instructions read their source register from the same field.
func (in Instruction) DR() uint16 {
	return uint16(in>>9) & 0x7
}

// SR1 returns the first source register field in bits 8-6.
func (in Instruction) SR1() uint16 {
	return uint16(in>>6) & 0x7
}

// SR2 returns the second source register field in bits 2-0.
func (in Instruction) SR2() uint16 {
	return uint16(in) & 0x7
}

// BaseR returns the base register field in bits 8-6.
func (in Instruction) BaseR() uint16 {
	return uint16(in>>6) & 0x7
}

// Nzp returns the branch condition field in bits 11-9. The bits line up
// with the Flag encoding, so a branch is taken when Nzp()&Cond != 0.
func (in Instruction) Nzp() uint16 {
	return uint16(in>>9) & 0x7
}

// ImmBit reports whether bit 5 selects the immediate form of ADD and AND.
func (in Instruction) ImmBit() bool {
	return in&(1<<5) != 0
}

// LongBit reports whether bit 11 selects the PC-relative form of JSR.
func (in Instruction) LongBit() bool {
	return in&(1<<11) != 0
}

// Imm5 returns the sign-extended 5-bit immediate in bits 4-0.
func (in Instruction) Imm5() uint16 {
	return SignExtend(uint16(in)&0x1F, 5)
}

// Offset6 returns the sign-extended 6-bit base offset in bits 5-0.
func (in Instruction) Offset6() uint16 {
	return SignExtend(uint16(in)&0x3F, 6)
}

// PCOffset9 returns the sign-extended 9-bit PC offset in bits 8-0.
func (in Instruction) PCOffset9() uint16 {
	return SignExtend(uint16(in)&0x1FF, 9)
}

// PCOffset11 returns the sign-extended 11-bit PC offset in bits 10-0.
func (in Instruction) PCOffset11() uint16 {
	return SignExtend(uint16(in)&0x7FF, 11)
}

// Vector returns the trap vector in bits 7-0.
func (in Instruction) Vector() uint16 {
	return uint16(in) & 0xFF
}

// String renders the instruction as a mnemonic with its decoded fields,
// for tracing and fault messages.
func (in Instruction) String() (text string) {
	op := in.Opcode()

	switch op {
	case OP_BR:
		text = fmt.Sprintf("%v nzp=%03b %+d", op, in.Nzp(), int16(in.PCOffset9()))
	case OP_ADD, OP_AND:
		if in.ImmBit() {
			text = fmt.Sprintf("%v r%d, r%d, #%d", op, in.DR(), in.SR1(), int16(in.Imm5()))
		} else {
			text = fmt.Sprintf("%v r%d, r%d, r%d", op, in.DR(), in.SR1(), in.SR2())
		}
	case OP_NOT:
		text = fmt.Sprintf("%v r%d, r%d", op, in.DR(), in.SR1())
	case OP_LD, OP_LDI, OP_LEA:
		text = fmt.Sprintf("%v r%d, %+d", op, in.DR(), int16(in.PCOffset9()))
	case OP_ST, OP_STI:
		text = fmt.Sprintf("%v r%d, %+d", op, in.DR(), int16(in.PCOffset9()))
	case OP_LDR, OP_STR:
		text = fmt.Sprintf("%v r%d, r%d, #%d", op, in.DR(), in.BaseR(), int16(in.Offset6()))
	case OP_JSR:
		if in.LongBit() {
			text = fmt.Sprintf("%v %+d", op, int16(in.PCOffset11()))
		} else {
			text = fmt.Sprintf("jsrr r%d", in.BaseR())
		}
	case OP_JMP:
		text = fmt.Sprintf("%v r%d", op, in.BaseR())
	case OP_TRAP:
		text = fmt.Sprintf("%v 0x%02x", op, in.Vector())
	default:
		text = fmt.Sprintf("%v 0x%04x", op, uint16(in))
	}

	return
}
