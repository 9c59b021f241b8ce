package io

import (
	"errors"

	"github.com/ezrec/lc3/translate"
)

var f = translate.From

var (
	// ErrInputAborted reports a keystroke read cut short: the console
	// closed, scripted input ran out, or the host cancelled the wait.
	ErrInputAborted = errors.New(f("input aborted"))
)
