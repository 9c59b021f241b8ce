package io

import (
	"bufio"
	"io"
	"strings"
)

// Pipe is a scripted Terminal over plain reader and writer streams. It
// stands in for the console in tests and in embeddings that feed
// keystrokes from a buffer or file. A nil Input has no keystrokes; a
// nil Output discards characters.
type Pipe struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
}

var _ Terminal = (*Pipe)(nil)

func (pipe *Pipe) input() *bufio.Reader {
	if pipe.reader == nil {
		in := pipe.Input
		if in == nil {
			in = strings.NewReader("")
		}
		pipe.reader = bufio.NewReader(in)
	}

	return pipe.reader
}

// Ready reports whether another scripted keystroke remains.
func (pipe *Pipe) Ready() bool {
	_, err := pipe.input().Peek(1)
	return err == nil
}

// ReadKey returns the next scripted keystroke. Exhausted input surfaces
// as ErrInputAborted rather than blocking forever.
func (pipe *Pipe) ReadKey() (key byte, err error) {
	key, err = pipe.input().ReadByte()
	if err != nil {
		err = ErrInputAborted
	}

	return
}

// WriteChar writes one character to the output stream.
func (pipe *Pipe) WriteChar(c byte) (err error) {
	if pipe.Output == nil {
		return
	}
	_, err = pipe.Output.Write([]byte{c})

	return
}
