package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores the terminal
type Finalizer interface {
	Fini()
}

var crashTerminal atomic.Pointer[Finalizer]

// SetCrashTerminal registers the screen to finalize before a crash report
func SetCrashTerminal(f Finalizer) {
	crashTerminal.Store(&f)
}

// HandleCrash resets the terminal, prints the panic with its stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if f := crashTerminal.Load(); f != nil {
		(*f).Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mTEXTRIS CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so the terminal is restored on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
