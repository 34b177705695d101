// Package logger provides a small leveled console logger with a colored component prefix.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

var (
	ErrNilWriter   = errors.New("nil log writer")
	ErrEmptyPrefix = errors.New("empty log prefix")
)

// Logger writes lines shaped like "<prefix> [LEVEL] message".
type Logger struct {
	out *log.Logger
}

// New creates a Logger that tags every line with prefix painted in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	tag := fmt.Sprintf("%s[%s]%s ", color, prefix, colorReset)
	return &Logger{
		out: log.New(w, tag, log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(colorGreen, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(colorYellow, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(colorRed, "ERROR", msg)
}

func (l *Logger) write(color, level, msg string) {
	l.out.Printf("%s[%s]%s %s", color, level, colorReset, msg)
}
