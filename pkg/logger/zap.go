package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the verbosity of a zap backed logger.
type Level string

// Supported levels.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// zapLogger forwards Logf calls to a zap sugared logger at a fixed level.
type zapLogger struct {
	sugar *zap.SugaredLogger
	level zapcore.Level
}

// NewZapLogger creates a logger writing human readable lines to stderr.
// Messages are emitted at info level, so a threshold above LevelInfo silences them.
func NewZapLogger(threshold Level) Logger {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(os.Stderr), mapLevel(threshold))
	return NewZapLoggerFrom(zap.New(core), zapcore.InfoLevel)
}

// NewZapLoggerFrom wraps an existing zap logger, logging every message at level.
func NewZapLoggerFrom(logger *zap.Logger, level zapcore.Level) Logger {
	return &zapLogger{
		sugar: logger.WithOptions(zap.AddCallerSkip(1)).Sugar(),
		level: level,
	}
}

// Logf logs a formatted message at the logger level.
func (z *zapLogger) Logf(format string, args ...interface{}) {
	z.sugar.Logf(z.level, format, args...)
}

// mapLevel maps a Level onto its zap equivalent, defaulting to info.
func mapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
