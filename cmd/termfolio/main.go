package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/termfolio/internal/cli"
	"github.com/vvka-141/termfolio/pkg/termfolio"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(termfolio.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(termfolio.ExitCodeForError(err))
	}
}
