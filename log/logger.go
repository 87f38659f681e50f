package log

import (
	"fmt"
	"io"
	"strings"
)

// Level is a set of enabled message levels
type Level uint8

// Message levels a Logger can filter on
const (
	LevelInfo Level = 1 << iota
	LevelWarn
	LevelError
	LevelDebug

	LevelAll = LevelInfo | LevelWarn | LevelError | LevelDebug
)

// Logger filters and prints messages to a destination
type Logger struct {
	output io.Writer
	levels Level
}

// New returns an instance of Logger with every level disabled
func New(output io.Writer) *Logger {
	return &Logger{output: output}
}

// Enable activates the given levels
func (l *Logger) Enable(levels Level) {
	l.levels |= levels
}

// Disable deactivates the given levels
func (l *Logger) Disable(levels Level) {
	l.levels &^= levels
}

// Enabled reports whether every given level is active
func (l *Logger) Enabled(levels Level) bool {
	return l.levels&levels == levels
}

// Logf writes a formatted message to the specified output
func (l *Logger) Logf(format string, a ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format = format + "\n"
	}
	fmt.Fprintf(l.output, format, a...)
}

// Log writes message to the specified output
func (l *Logger) Log(a ...interface{}) {
	fmt.Fprintln(l.output, a...)
}

func (l *Logger) logWithColor(color string, a ...interface{}) {
	msg := fmt.Sprintln(a...)
	l.Log(color + strings.TrimSuffix(msg, "\n") + ConsoleColors.Reset())
}

func (l *Logger) logfWithColor(color string, format string, a ...interface{}) {
	l.Logf(color+strings.TrimSuffix(format, "\n")+ConsoleColors.Reset(), a...)
}

// Info writes the message when info level is active
func (l *Logger) Info(a ...interface{}) {
	if l.Enabled(LevelInfo) {
		l.logWithColor(ConsoleColors.Blue(), a...)
	}
}

// Infof writes the formatted message when info level is active
func (l *Logger) Infof(format string, a ...interface{}) {
	if l.Enabled(LevelInfo) {
		l.logfWithColor(ConsoleColors.Blue(), format, a...)
	}
}

// Warn writes the message when warn level is active
func (l *Logger) Warn(a ...interface{}) {
	if l.Enabled(LevelWarn) {
		l.logWithColor(ConsoleColors.Yellow(), a...)
	}
}

// Warnf writes the formatted message when warn level is active
func (l *Logger) Warnf(format string, a ...interface{}) {
	if l.Enabled(LevelWarn) {
		l.logfWithColor(ConsoleColors.Yellow(), format, a...)
	}
}

// Error writes err when error level is active
func (l *Logger) Error(err error) {
	if l.Enabled(LevelError) {
		l.logWithColor(ConsoleColors.Red(), err.Error())
	}
}

// Errorf writes the formatted message when error level is active
func (l *Logger) Errorf(format string, a ...interface{}) {
	if l.Enabled(LevelError) {
		l.logfWithColor(ConsoleColors.Red(), format, a...)
	}
}

// Debug writes the message when debug level is active
func (l *Logger) Debug(a ...interface{}) {
	if l.Enabled(LevelDebug) {
		l.logWithColor(ConsoleColors.Cyan(), a...)
	}
}

// Debugf writes the formatted message when debug level is active
func (l *Logger) Debugf(format string, a ...interface{}) {
	if l.Enabled(LevelDebug) {
		l.logfWithColor(ConsoleColors.Cyan(), format, a...)
	}
}
