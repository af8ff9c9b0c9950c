package log

import "strings"

// IndentingConsole adapts a LibraryLogger to the nested-depth "console"
// shape that a part/package builder core expects (Debug/Info plus
// Indent/Outdent), prefixing every line with two spaces per level.
type IndentingConsole struct {
	logger LibraryLogger
	depth  int
}

// NewIndentingConsole wraps logger. A nil logger is treated as NoOpLogger.
func NewIndentingConsole(logger LibraryLogger) *IndentingConsole {
	if logger == nil {
		logger = NoOpLogger{}
	}
	return &IndentingConsole{logger: logger}
}

func (c *IndentingConsole) Debug(format string, args ...any) {
	c.logger.Debug(c.prefix()+format, args...)
}

func (c *IndentingConsole) Info(format string, args ...any) {
	c.logger.Info(c.prefix()+format, args...)
}

func (c *IndentingConsole) Indent() {
	c.depth++
}

func (c *IndentingConsole) Outdent() {
	if c.depth > 0 {
		c.depth--
	}
}

func (c *IndentingConsole) prefix() string {
	if c.depth == 0 {
		return ""
	}
	return strings.Repeat("  ", c.depth)
}
