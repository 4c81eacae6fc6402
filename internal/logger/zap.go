package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger with a level that can change at runtime.
type Logger struct {
	*zap.SugaredLogger
	level zap.AtomicLevel
}

func newConsoleCore(level zap.AtomicLevel) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stdout),
		level,
	)
}

func newZapLogger(level string) *Logger {
	lvl := zap.NewAtomicLevelAt(parseLevel(level))
	return &Logger{
		SugaredLogger: zap.New(newConsoleCore(lvl), zap.AddCaller()).Sugar(),
		level:         lvl,
	}
}

// SetLevel changes the minimum enabled level.
func (l *Logger) SetLevel(level string) {
	l.level.SetLevel(parseLevel(level))
}
