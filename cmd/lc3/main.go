// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/lc3/emulator"
	"github.com/ezrec/lc3/io"
)

// Exit statuses, distinguishable by wrapping scripts.
const (
	EXIT_OK    = 0 // clean HALT
	EXIT_LOAD  = 1 // image missing or unreadable
	EXIT_USAGE = 2 // bad invocation
	EXIT_FAULT = 3 // illegal opcode or trap vector
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %v [-v] image-file\n", os.Args[0])
		os.Exit(EXIT_USAGE)
	}
	path := flag.Arg(0)

	console := io.NewConsole()
	err := console.Open()
	if err != nil {
		log.Printf("console: %v", err)
		os.Exit(EXIT_LOAD)
	}

	// An interrupt restores the terminal and unblocks any pending
	// keystroke read, which surfaces as an input-aborted fault below.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		console.Close()
	}()

	emu := emulator.NewEmulator(console)
	emu.Verbose = verbose

	err = emu.LoadFile(path)
	if err != nil {
		console.Close()
		log.Printf("%v: %v", path, err)
		os.Exit(EXIT_LOAD)
	}

	err = emu.Run()
	console.Close()
	if err != nil {
		log.Printf("%v", err)
		if errors.Is(err, io.ErrInputAborted) {
			os.Exit(130)
		}
		os.Exit(EXIT_FAULT)
	}

	os.Exit(EXIT_OK)
}
