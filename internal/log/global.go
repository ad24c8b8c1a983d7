package log

import "sync"

var (
	sharedMu sync.RWMutex
	shared   = Default()
)

// SetDefaultLogger replaces the logger used by DefaultLogger. The
// console calls it once at startup, after the log level is resolved
// from config and flags.
func SetDefaultLogger(l *Logger) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	shared = l
}

// DefaultLogger returns the process-wide logger. Until startup
// configures one, it is the stderr WARN logger from DefaultConfig.
func DefaultLogger() *Logger {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return shared
}
