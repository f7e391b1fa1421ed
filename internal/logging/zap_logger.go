package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.Logger to termfolio.Logger. Messages are formatted
// printf-style and written at debug, info and error level.
type ZapLogger struct {
	log *zap.Logger
}

// NewZapLogger wraps an existing zap logger.
func NewZapLogger(log *zap.Logger) *ZapLogger {
	return &ZapLogger{log: log}
}

// NewFileLogger builds a JSON logger appending to path. Debug level is
// enabled only when verbose is set.
func NewFileLogger(path string, verbose bool) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return &ZapLogger{log: log}, nil
}

// With returns a logger that adds key=value to every entry.
func (l *ZapLogger) With(key, value string) *ZapLogger {
	return &ZapLogger{log: l.log.With(zap.String(key, value))}
}

// Verbose logs at debug level.
func (l *ZapLogger) Verbose(format string, args ...interface{}) {
	l.log.Debug(message(format, args))
}

// Info logs at info level.
func (l *ZapLogger) Info(format string, args ...interface{}) {
	l.log.Info(message(format, args))
}

// Error logs at error level.
func (l *ZapLogger) Error(format string, args ...interface{}) {
	l.log.Error(message(format, args))
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.log.Sync()
}

func message(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
