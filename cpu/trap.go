package cpu

// Trap service vectors.
const (
	TRAP_GETC  = uint16(0x20) /* read one keystroke into r0, no echo */
	TRAP_OUT   = uint16(0x21) /* write the character in r0 */
	TRAP_PUTS  = uint16(0x22) /* write the character-per-word string at r0 */
	TRAP_IN    = uint16(0x23) /* prompt, read one keystroke into r0, echo */
	TRAP_PUTSP = uint16(0x24) /* write the two-characters-per-word string at r0 */
	TRAP_HALT  = uint16(0x25) /* stop the machine */
)

// trap dispatches a trap service vector. The caller has already saved
// the return address in r7.
func (cpu *Cpu) trap(vector uint16) (err error) {
	switch vector {
	case TRAP_GETC:
		var key byte
		key, err = cpu.terminal.ReadKey()
		if err != nil {
			return
		}
		cpu.Reg[R0] = uint16(key)
		cpu.updateFlags(R0)

	case TRAP_OUT:
		err = cpu.terminal.WriteChar(byte(cpu.Reg[R0]))

	case TRAP_PUTS:
		addr := cpu.Reg[R0]
		for {
			var word uint16
			word, err = cpu.Bus.Read(addr)
			if err != nil || word == 0 {
				return
			}
			err = cpu.terminal.WriteChar(byte(word))
			if err != nil {
				return
			}
			addr++
		}

	case TRAP_IN:
		err = cpu.write("Enter a character: ")
		if err != nil {
			return
		}
		var key byte
		key, err = cpu.terminal.ReadKey()
		if err != nil {
			return
		}
		err = cpu.terminal.WriteChar(key)
		if err != nil {
			return
		}
		cpu.Reg[R0] = uint16(key)
		cpu.updateFlags(R0)

	case TRAP_PUTSP:
		addr := cpu.Reg[R0]
		for {
			var word uint16
			word, err = cpu.Bus.Read(addr)
			if err != nil {
				return
			}
			low := byte(word)
			if low == 0 {
				return
			}
			err = cpu.terminal.WriteChar(low)
			if err != nil {
				return
			}
			if high := byte(word >> 8); high != 0 {
				err = cpu.terminal.WriteChar(high)
				if err != nil {
					return
				}
			}
			addr++
		}

	case TRAP_HALT:
		err = cpu.write("HALT\n")
		if err != nil {
			return
		}
		cpu.Running = false

	default:
		err = ErrTrap{Addr: cpu.Pc - 1, Vector: vector}
	}

	return
}

// write sends a host-side string to the terminal one character at a time.
func (cpu *Cpu) write(text string) (err error) {
	for _, c := range []byte(text) {
		err = cpu.terminal.WriteChar(c)
		if err != nil {
			return
		}
	}

	return
}
