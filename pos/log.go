package pos

import (
	"io"
	"log/slog"
	"sync"
)

var (
	logMu  sync.RWMutex
	logger = discardLogger()
)

// SetLogger installs l as the package logger. Passing nil restores the
// default, which discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	logMu.Lock()
	logger = l
	logMu.Unlock()
}

// L returns the package logger.
func L() *slog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
