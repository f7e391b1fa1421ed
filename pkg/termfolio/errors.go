package termfolio

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	if _, err := tree.List(path); errors.Is(err, termfolio.ErrWrongType) {
//	    // Path names a file
//	}
var (
	// ErrNotFound indicates a path does not resolve to any node.
	ErrNotFound = errors.New("no such file or directory")

	// ErrWrongType indicates a node exists but is the wrong kind.
	ErrWrongType = errors.New("wrong node type")

	// ErrNotADirectory indicates a directory was expected but a file was found.
	ErrNotADirectory = fmt.Errorf("%w: not a directory", ErrWrongType)

	// ErrIsADirectory indicates a file was expected but a directory was found.
	ErrIsADirectory = fmt.Errorf("%w: is a directory", ErrWrongType)

	// ErrMissingArgument indicates a required command argument was omitted.
	ErrMissingArgument = errors.New("missing argument")

	// ErrUnknownCommand indicates no handler is registered for a command name.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrConflict indicates content entries cannot form a valid tree.
	ErrConflict = errors.New("conflicting filesystem entry")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrContentLoad indicates content documents could not be read.
	ErrContentLoad = errors.New("content load failed")

	// ErrCommandFailed indicates a scripted command reported failure.
	ErrCommandFailed = errors.New("command failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrContentLoad), errors.Is(err, ErrConflict):
		return ExitContentError
	case errors.Is(err, ErrCommandFailed):
		return ExitCommandFailed
	}

	// Cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	for _, pattern := range usagePatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"flag needs an argument",
	"requires at least",
	"accepts at most",
	"missing required argument",
}
