package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level int
	sugar *zap.SugaredLogger
}

func NewLogger(level int) *defaultLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)

	z, err := cfg.Build()
	if err != nil {
		z = zap.NewNop()
	}

	return &defaultLogger{level: level, sugar: z.Sugar()}
}

// NewNopLogger drops every message. It is used by tests.
func NewNopLogger() *defaultLogger {
	return &defaultLogger{level: SILENCE, sugar: zap.NewNop().Sugar()}
}

// ParseLevel converts a level name from configs. Unknown names fall back to
// INFO.
func ParseLevel(s string) int {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARNING
	case "error":
		return ERROR
	case "silence", "off":
		return SILENCE
	default:
		return INFO
	}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	if l.level <= DEBUG {
		l.sugar.Debugf(msg, a...)
	}
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	if l.level <= INFO {
		l.sugar.Infof(msg, a...)
	}
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	if l.level <= WARNING {
		l.sugar.Warnf(msg, a...)
	}
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	if l.level <= ERROR {
		l.sugar.Errorf(msg, a...)
	}
}

func (l *defaultLogger) Sync() error {
	return l.sugar.Sync()
}
