// Package logging provides concrete implementations of the termfolio.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed lines to an io.Writer (stderr by default)
//   - NullLogger: Discards all messages (useful for testing)
//   - ZapLogger: Writes JSON lines through go.uber.org/zap, typically to a file
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
