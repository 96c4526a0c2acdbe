// Package logger holds the process logger. It starts as a no-op logger and
// becomes a production zap logger once Init is called.
package logger

import (
	"go.uber.org/zap"
)

type Logger struct {
	Log *zap.Logger
}

func New() *Logger {
	return &Logger{
		Log: zap.NewNop(),
	}
}

// Init replaces the no-op logger with a JSON production logger at the given
// level ("debug", "info", ...). Encoding "console" switches to the
// human-readable encoder; anything else keeps JSON.
func (l *Logger) Init(level string, encoding string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	if encoding == "console" {
		cfg.Encoding = "console"
	}

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = zl
	return nil
}

// Named returns a child logger for one component.
func (l *Logger) Named(component string) *zap.Logger {
	return l.Log.Named(component)
}

// Sync flushes buffered entries. Errors from syncing stdout/stderr are
// ignored since they are expected on some platforms.
func (l *Logger) Sync() {
	_ = l.Log.Sync()
}
