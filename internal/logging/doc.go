// Package logging provides concrete implementations of the xmptag.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// ConsoleLogger styles its [VERBOSE] and [ERROR] prefixes with lipgloss.
// The renderer is bound to the destination writer, so redirected output
// stays plain text.
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
