// Package logger defines a small leveled logger used to surface warnings
// that must never abort a request.
package logger

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// Logger is a simple logger interface with logging at levels.
type Logger interface {
	// Errorf logs an error.
	Errorf(format string, v ...interface{})
	// Warningf logs a recoverable problem.
	Warningf(format string, v ...interface{})
	// Infof logs an info message.
	Infof(format string, v ...interface{})
	// Debugf logs a debug message.
	Debugf(format string, v ...interface{})
}

const (
	lError = iota
	lWarning
	lInfo
	lDebug
)

var levelToNLevel = map[string]int{
	"error":   lError,
	"warning": lWarning,
	"info":    lInfo,
	"debug":   lDebug,
}

// ValidLevel returns an error unless level is one of
// "error", "warning", "info" or "debug".
func ValidLevel(level string) error {
	if _, ok := levelToNLevel[strings.ToLower(level)]; !ok {
		return errors.Errorf("unknown log level: %s (must be one of error, warning, info, debug)", level)
	}
	return nil
}

type simpleLogger struct {
	*log.Logger
	nlevel int
	aurora aurora.Aurora
}

// NewSimpleLogger creates a logger logging only up to the given level.
// Unknown levels fall back to "warning".
func NewSimpleLogger(w io.Writer, level string, enableColor bool) Logger {
	nlevel, ok := levelToNLevel[strings.ToLower(level)]
	if !ok {
		nlevel = lWarning
	}
	return &simpleLogger{
		Logger: log.New(w, "", 0),
		nlevel: nlevel,
		aurora: aurora.NewAurora(enableColor),
	}
}

func (lg *simpleLogger) output(tag string, color aurora.Color, format string, v ...interface{}) {
	lg.Printf("%s "+format, append([]interface{}{lg.aurora.Colorize(tag, color)}, v...)...)
}

func (lg *simpleLogger) Errorf(format string, v ...interface{}) {
	lg.output("ERROR", aurora.RedFg|aurora.BoldFm, format, v...)
}

func (lg *simpleLogger) Warningf(format string, v ...interface{}) {
	if lg.nlevel >= lWarning {
		lg.output("WARNING", aurora.BrownFg, format, v...)
	}
}

func (lg *simpleLogger) Infof(format string, v ...interface{}) {
	if lg.nlevel >= lInfo {
		lg.output("INFO", aurora.CyanFg, format, v...)
	}
}

func (lg *simpleLogger) Debugf(format string, v ...interface{}) {
	if lg.nlevel >= lDebug {
		lg.output("DEBUG", aurora.WhiteFg, format, v...)
	}
}

type nopLogger struct{}

// Nop discards everything.
var Nop Logger = nopLogger{}

func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Debugf(string, ...interface{})   {}

// Default logs warnings and errors to stderr without color.
var Default = NewSimpleLogger(os.Stderr, "warning", false)
