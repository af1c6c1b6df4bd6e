package logger

import (
	"sync"
)

var (
	sharedLogger *Logger
	sharedMu     sync.RWMutex
)

// Shared returns the process-wide logger, creating it with New on first use.
func Shared() *Logger {
	sharedMu.RLock()
	l := sharedLogger
	sharedMu.RUnlock()
	if l != nil {
		return l
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedLogger == nil {
		sharedLogger = New()
	}
	return sharedLogger
}

// SetShared replaces the process-wide logger. A nil logger makes the next
// call to Shared create a fresh one.
func SetShared(l *Logger) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	sharedLogger = l
}

// Package-level convenience functions using the shared logger

// Configure applies opts to the shared logger; see Logger.Configure.
func Configure(opts ...Option) *Logger {
	return Shared().Configure(opts...)
}

// Error logs at ErrorSeverity using the shared logger
func Error(args ...interface{}) {
	Shared().Error(args...)
}

// Warning logs at WarningSeverity using the shared logger
func Warning(args ...interface{}) {
	Shared().Warning(args...)
}

// Info logs at InfoSeverity using the shared logger
func Info(args ...interface{}) {
	Shared().Info(args...)
}

// Debug logs at DebugSeverity using the shared logger
func Debug(args ...interface{}) {
	Shared().Debug(args...)
}

// Errorf logs a formatted message at ErrorSeverity using the shared logger
func Errorf(format string, args ...interface{}) {
	Shared().Errorf(format, args...)
}

// Warningf logs a formatted message at WarningSeverity using the shared logger
func Warningf(format string, args ...interface{}) {
	Shared().Warningf(format, args...)
}

// Infof logs a formatted message at InfoSeverity using the shared logger
func Infof(format string, args ...interface{}) {
	Shared().Infof(format, args...)
}

// Debugf logs a formatted message at DebugSeverity using the shared logger
func Debugf(format string, args ...interface{}) {
	Shared().Debugf(format, args...)
}
