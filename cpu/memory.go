package cpu

// MEMORY_SIZE is the number of addressable 16-bit words.
const MEMORY_SIZE = 1 << 16

// Memory-mapped keyboard device register addresses.
const (
	MR_KBSR = uint16(0xFE00) // keyboard status register
	MR_KBDR = uint16(0xFE02) // keyboard data register
)

// Memory is the machine's linear store: 65536 independently addressable
// words, zeroed at reset. Device behavior lives in the Bus, not here.
type Memory [MEMORY_SIZE]uint16

// Read returns the word stored at addr.
func (mem *Memory) Read(addr uint16) uint16 {
	return mem[addr]
}

// Write stores a word at addr.
func (mem *Memory) Write(addr, value uint16) {
	mem[addr] = value
}

// Reset zeroes the whole address space.
func (mem *Memory) Reset() {
	clear(mem[:])
}

// Load copies words into memory starting at origin. Words past the top
// of the address space are truncated, never wrapped.
func (mem *Memory) Load(origin uint16, words []uint16) (loaded int) {
	return copy(mem[origin:], words)
}

// Bus sits between the processor and Memory and gives the two keyboard
// device registers their read-synthesized behavior. Every processor
// memory access goes through the Bus; the loader writes Memory directly.
type Bus struct {
	Memory   *Memory
	Keyboard Terminal
}

// Read returns the word at addr. A status register read reports
// keystroke availability in the top bit without blocking. A data
// register read blocks for the next keystroke and latches it into the
// low byte of the backing cell. The read error is non-nil only for an
// aborted keystroke read.
func (bus *Bus) Read(addr uint16) (value uint16, err error) {
	switch addr {
	case MR_KBSR:
		if bus.Keyboard != nil && bus.Keyboard.Ready() {
			value = 1 << 15
		}
	case MR_KBDR:
		if bus.Keyboard == nil {
			err = ErrNoKeyboard
			return
		}
		var key byte
		key, err = bus.Keyboard.ReadKey()
		if err != nil {
			return
		}
		bus.Memory.Write(addr, uint16(key))
		value = uint16(key)
	default:
		value = bus.Memory.Read(addr)
	}

	return
}

// Write stores into ordinary memory. The device registers are
// read-synthesized, never write-backed.
func (bus *Bus) Write(addr, value uint16) {
	if addr == MR_KBSR || addr == MR_KBDR {
		return
	}
	bus.Memory.Write(addr, value)
}
