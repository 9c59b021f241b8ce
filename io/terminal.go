// Package io provides terminal collaborators for the LC-3 machine: the
// real console (raw-mode keyboard, unbuffered display) and a scripted
// pipe for tests and embedding.
package io

// Terminal is the keyboard and display capability the machine's device
// registers and console traps are wired to.
type Terminal interface {
	// Ready reports whether a keystroke is waiting, without blocking.
	Ready() bool
	// ReadKey blocks until the next keystroke arrives. An abandoned
	// read reports ErrInputAborted.
	ReadKey() (byte, error)
	// WriteChar writes one character to the display.
	WriteChar(c byte) error
}
