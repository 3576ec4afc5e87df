package vfsh

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Session ended normally
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration file or environment
	ExitCommandFailed = 13 // A shell command reported an error in strict mode
)

const (
	// RootLabel is the label stored at the root of every fresh tree.
	RootLabel = "/"

	// PathSeparator separates directory names in path expressions.
	PathSeparator = "/"

	// ExitKeyword terminates the REPL. It is handled before the engine sees the line.
	ExitKeyword = "exit"

	// DefaultHistorySize is the number of command lines remembered by the interactive REPL.
	DefaultHistorySize = 100

	// DefaultPrompt is the prompt suffix rendered after the working directory.
	DefaultPrompt = "$ "
)
