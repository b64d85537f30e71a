package vox

import (
	"fmt"
	"log"
	"os"
)

// Logger receives diagnostics from the loader. A nil Logger discards them.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// StdLogger writes leveled lines through the standard log package.
type StdLogger struct {
	debug  bool
	prefix string
	out    *log.Logger
}

// NewStdLogger returns a logger writing to stderr. Debug lines are dropped
// unless debug is set.
func NewStdLogger(prefix string, debug bool) *StdLogger {
	return &StdLogger{
		debug:  debug,
		prefix: prefix,
		out:    log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds),
	}
}

func (l *StdLogger) line(level, format string, args ...any) string {
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, fmt.Sprintf(format, args...))
	}
	return fmt.Sprintf("%s: %s", level, fmt.Sprintf(format, args...))
}

func (l *StdLogger) Debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	l.out.Print(l.line("DEBUG", format, args...))
}

func (l *StdLogger) Infof(format string, args ...any) {
	l.out.Print(l.line("INFO", format, args...))
}

func (l *StdLogger) Warnf(format string, args ...any) {
	l.out.Print(l.line("WARN", format, args...))
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
