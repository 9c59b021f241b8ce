package io

import (
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Console is the Terminal backed by the real controlling terminal.
// Open puts the input into raw mode so keystrokes arrive unbuffered and
// unechoed; Close restores the saved attributes and aborts any blocked
// ReadKey.
type Console struct {
	Input  *os.File
	Output *os.File

	saved unix.Termios
	raw   bool
	keys  chan byte
	done  chan struct{}
	once  sync.Once
}

var _ Terminal = (*Console)(nil)

// NewConsole returns a console on stdin and stdout.
func NewConsole() *Console {
	return &Console{
		Input:  os.Stdin,
		Output: os.Stdout,
	}
}

// Open configures raw mode and starts the keystroke reader. Input that
// is not a tty (a redirected file, a test harness) is left alone.
func (con *Console) Open() (err error) {
	con.keys = make(chan byte, 8)
	con.done = make(chan struct{})

	if term.IsTerminal(int(con.Input.Fd())) {
		err = termios.Tcgetattr(con.Input.Fd(), &con.saved)
		if err != nil {
			return
		}
		attr := con.saved
		attr.Lflag &^= unix.ICANON | unix.ECHO
		err = termios.Tcsetattr(con.Input.Fd(), termios.TCSANOW, &attr)
		if err != nil {
			return
		}
		con.raw = true
	}

	go con.poll()

	return
}

// Close restores the terminal attributes. Safe to call more than once.
func (con *Console) Close() (err error) {
	con.once.Do(func() { close(con.done) })
	if con.raw {
		con.raw = false
		err = termios.Tcsetattr(con.Input.Fd(), termios.TCSANOW, &con.saved)
	}

	return
}

// poll feeds keystrokes from the input into the key channel until the
// input fails or the console closes.
func (con *Console) poll() {
	for {
		var one [1]byte
		n, err := con.Input.Read(one[:])
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		select {
		case con.keys <- one[0]:
		case <-con.done:
			return
		}
	}
}

// Ready reports whether a keystroke is waiting.
func (con *Console) Ready() bool {
	return len(con.keys) > 0
}

// ReadKey blocks for the next keystroke.
func (con *Console) ReadKey() (key byte, err error) {
	select {
	case key = <-con.keys:
	case <-con.done:
		err = ErrInputAborted
	}

	return
}

// WriteChar writes one character to the output.
func (con *Console) WriteChar(c byte) (err error) {
	_, err = con.Output.Write([]byte{c})
	return
}
