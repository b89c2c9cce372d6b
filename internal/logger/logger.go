// Package logger is a small leveled logging facade over the standard log
// package. Verbosity is set once at startup; call sites stay free of
// level checks and formatting logic.
package logger

import (
	"log"
	"os"
)

// Level is a logging verbosity level; higher means chattier.
type Level int

const (
	Error Level = iota
	Info
	Debug
	Trace
)

var current = Info

func init() {
	// logs go to stderr so program output stays clean for pipelines
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// SetVerbosity sets the global verbosity, typically right after flag
// parsing.
func SetVerbosity(v int) {
	current = Level(v)
}

func logf(l Level, prefix, format string, args ...any) {
	if current >= l {
		log.Printf(prefix+format, args...)
	}
}

// Errorf logs failures that need attention.
func Errorf(format string, args ...any) { logf(Error, "[ERROR] ", format, args...) }

// Infof logs major lifecycle events.
func Infof(format string, args ...any) { logf(Info, "[INFO]  ", format, args...) }

// Debugf logs diagnostic detail.
func Debugf(format string, args ...any) { logf(Debug, "[DEBUG] ", format, args...) }

// Tracef logs fine-grained execution detail.
func Tracef(format string, args ...any) { logf(Trace, "[TRACE] ", format, args...) }
