// Package cpu implements the LC-3 processor for the emulator.
//
// The machine consists of eight 16-bit general-purpose registers (r0-r7),
// a program counter, a condition-code register holding exactly one of the
// positive/zero/negative flags, and 65536 words of memory. Two memory
// addresses are keyboard device registers serviced by a bus interceptor
// rather than ordinary storage.
//
// The sixteen 4-bit opcodes and the six trap services are executed by an
// exhaustive dispatch; the two reserved encodings (RTI and 0xD) fault
// instead of silently falling through.
package cpu
