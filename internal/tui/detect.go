package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how the shell talks to the user.
type Mode int

const (
	// ModeNonInteractive reads lines from stdin and prints plain text.
	ModeNonInteractive Mode = iota
	// ModeInteractive runs the full-screen terminal UI.
	ModeInteractive
)

// DetectMode determines whether the shell should run interactively.
//
// Returns ModeNonInteractive if:
//   - TERMFOLIO_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set
//   - stdin or stdout is not a terminal (piped input or output)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("TERMFOLIO_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive reports whether DetectMode returns ModeInteractive.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

// String returns "interactive" or "non-interactive".
func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "non-interactive"
}
