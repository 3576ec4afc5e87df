// Package logging provides concrete implementations of the vfsh.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed diagnostics to a writer (stderr by default)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
