// Package log defines the narrow logging seam partbuilder's packages
// depend on, instead of a concrete logging library: the core
// (package partpkg) takes a Console built on top of a LibraryLogger,
// the CLI wires a StdoutLogger, and tests wire a NoOpLogger or a
// recording fake.
package log

import "fmt"

// LibraryLogger is the logging capability a library package needs
// without committing to a destination or format.
type LibraryLogger interface {
	// Info logs informational messages (e.g., "Resolving dependencies...")
	Info(format string, args ...any)

	// Debug logs verbose diagnostics (package/class counts, merge decisions).
	Debug(format string, args ...any)

	// Warn logs a non-fatal problem (e.g., a config key that was ignored).
	Warn(format string, args ...any)

	// Error logs a failure that did not stop the run.
	Error(format string, args ...any)
}

// NoOpLogger discards everything. Used by tests and by NewIndentingConsole
// when no logger is supplied.
type NoOpLogger struct{}

func (NoOpLogger) Info(format string, args ...any)  {}
func (NoOpLogger) Debug(format string, args ...any) {}
func (NoOpLogger) Warn(format string, args ...any)  {}
func (NoOpLogger) Error(format string, args ...any) {}

// StdoutLogger prints every message to stdout with a severity prefix.
// This is what partbuilder's cmd package wires by default.
type StdoutLogger struct{}

func (StdoutLogger) Info(format string, args ...any) {
	fmt.Printf("[INFO] "+format+"\n", args...)
}

func (StdoutLogger) Debug(format string, args ...any) {
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

func (StdoutLogger) Warn(format string, args ...any) {
	fmt.Printf("[WARN] "+format+"\n", args...)
}

func (StdoutLogger) Error(format string, args ...any) {
	fmt.Printf("[ERROR] "+format+"\n", args...)
}

// PrefixLogger tags every message from an underlying LibraryLogger with
// a fixed label, so a run against a specific job config can be told
// apart from runs against other job configs (cmd uses the config file's
// base name as the label).
type PrefixLogger struct {
	Logger LibraryLogger
	Prefix string
}

// WithPrefix wraps logger so every message is prefixed with "[prefix] ".
// A nil logger is treated as NoOpLogger.
func WithPrefix(logger LibraryLogger, prefix string) PrefixLogger {
	if logger == nil {
		logger = NoOpLogger{}
	}
	return PrefixLogger{Logger: logger, Prefix: prefix}
}

func (p PrefixLogger) Info(format string, args ...any) {
	p.Logger.Info("[%s] "+format, append([]any{p.Prefix}, args...)...)
}

func (p PrefixLogger) Debug(format string, args ...any) {
	p.Logger.Debug("[%s] "+format, append([]any{p.Prefix}, args...)...)
}

func (p PrefixLogger) Warn(format string, args ...any) {
	p.Logger.Warn("[%s] "+format, append([]any{p.Prefix}, args...)...)
}

func (p PrefixLogger) Error(format string, args ...any) {
	p.Logger.Error("[%s] "+format, append([]any{p.Prefix}, args...)...)
}
