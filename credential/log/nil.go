package log

import "context"

// Nil is a Logger that discards everything. Useful as a safe default.
type Nil struct{}

// Compile-time assertion: Nil implements Logger.
var _ Logger = Nil{}

// Log implements Logger and discards the entry.
func (Nil) Log(context.Context, Level, string, ...Field) {}

// With implements Logger and returns the same discarding logger.
func (n Nil) With(...Field) Logger { return n }

// Enabled implements Logger and reports no level as enabled.
func (Nil) Enabled(Level) bool { return false }
