package log

import (
	"io"
	"os"

	"github.com/nanovms/nixos-refind/types"
)

var defaultLogger *Logger

// Installer progress is shown unless configured otherwise.
func init() {
	defaultLogger = New(os.Stdout)
	defaultLogger.Enable(LevelInfo | LevelWarn | LevelError)
}

// InitDefault creates default logger for package-level logging access.
func InitDefault(output io.Writer, config *types.Config) {
	defaultLogger = New(output)
	defaultLogger.Enable(LevelInfo | LevelWarn | LevelError)

	if config == nil {
		return
	}

	if config.RunConfig.Quiet {
		defaultLogger.Disable(LevelInfo | LevelWarn)
	}
	if config.RunConfig.ShowDebug {
		defaultLogger.Enable(LevelAll)
	}
}

// Default returns the package-level logger.
func Default() *Logger {
	return defaultLogger
}

// Info logs info-level message using default logger.
func Info(a ...interface{}) {
	defaultLogger.Info(a...)
}

// Infof logs info-level formatted message using default logger.
func Infof(format string, a ...interface{}) {
	defaultLogger.Infof(format, a...)
}

// Warn logs warning-level message using default logger.
func Warn(a ...interface{}) {
	defaultLogger.Warn(a...)
}

// Errorf logs error-level formatted string message using default logger.
func Errorf(format string, a ...interface{}) {
	defaultLogger.Errorf(format, a...)
}

// Error logs error-level message using default logger.
func Error(err error) {
	defaultLogger.Error(err)
}

// Debugf logs debug-level formatted message using default logger.
func Debugf(format string, a ...interface{}) {
	defaultLogger.Debugf(format, a...)
}
