package vfsh

import (
	"errors"
	"strings"
)

// Sentinel errors for shell command outcomes.
// Every Message produced by the engine that is not a plain success carries one
// of these, so callers can classify outcomes with errors.Is().
//
// Example usage:
//
//	res := eng.Execute("cd /missing")
//	if errors.Is(res.Err(), vfsh.ErrInvalidPath) {
//	    // the path did not resolve, nothing moved
//	}
var (
	// ErrInvalidArguments indicates a command required arguments and received none.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrUnrecognizedCommand indicates the keyword is not in the supported set.
	ErrUnrecognizedCommand = errors.New("cannot recognize input")

	// ErrInvalidPath indicates a multi-segment path does not fully resolve.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidDirectory indicates a single-segment cd target does not exist.
	ErrInvalidDirectory = errors.New("invalid directory")

	// ErrDirectoryNotFound indicates a single-segment rm target does not exist.
	ErrDirectoryNotFound = errors.New("directory doesn't exist")

	// ErrAlreadyExists is informational: mkdir found an existing directory.
	ErrAlreadyExists = errors.New("already existed")

	// ErrNotRemovable indicates rm targeted the current directory or one of its ancestors.
	ErrNotRemovable = errors.New("cannot remove current directory or its parent")

	// ErrEmptyListing indicates ls found no children.
	ErrEmptyListing = errors.New("no directory exist")

	// ErrUnsupportedSessionArgument indicates session was given anything other than clear.
	ErrUnsupportedSessionArgument = errors.New("unsupported arguments")
)

// Sentinel errors for the surrounding CLI.
var (
	// ErrInvalidConfig indicates the shell configuration could not be loaded.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCommandFailed indicates a command reported an error while running in strict mode.
	ErrCommandFailed = errors.New("command failed")
)

// IsInformational reports whether err classifies an outcome that is reported
// to the user but does not count as a failure.
func IsInformational(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

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
	case errors.Is(err, ErrCommandFailed):
		return ExitCommandFailed
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"missing required argument",
}
