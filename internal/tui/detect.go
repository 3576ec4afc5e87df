package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for the shell front-end.
type Mode int

const (
	// ModeNonInteractive reads command lines from a pipe or script, without prompts or banner.
	ModeNonInteractive Mode = iota
	// ModeInteractive runs the full-screen line editor.
	ModeInteractive
)

// EnvNonInteractive forces non-interactive mode when set to "1".
const EnvNonInteractive = "VFSH_NON_INTERACTIVE"

// DetectMode determines whether the shell should run interactively.
//
// Returns ModeNonInteractive if:
//   - VFSH_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise. NO_COLOR only disables colors.
func DetectMode() Mode {
	return detectMode(os.Getenv, term.IsTerminal(int(os.Stdin.Fd())), term.IsTerminal(int(os.Stdout.Fd())))
}

func detectMode(getenv func(string) string, stdinTTY, stdoutTTY bool) Mode {
	if getenv(EnvNonInteractive) == "1" {
		return ModeNonInteractive
	}
	if getenv("CI") != "" {
		return ModeNonInteractive
	}
	if !stdinTTY || !stdoutTTY {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
