package logger

import (
	"fmt"

	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap sugared logger to the application logging port.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

var _ usecasecontract.IAppLogger = (*ZapLogger)(nil)

// NewZapLogger builds a JSON logger for production and a console logger otherwise.
func NewZapLogger(production bool, level string) (*ZapLogger, error) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &ZapLogger{base: base, sugar: base.Sugar()}, nil
}

// NewNopLogger discards everything. Used in tests.
func NewNopLogger() *ZapLogger {
	base := zap.NewNop()
	return &ZapLogger{base: base, sugar: base.Sugar()}
}

// Zap exposes the structured logger for middleware that logs fields.
func (l *ZapLogger) Zap() *zap.Logger {
	return l.base.WithOptions(zap.AddCallerSkip(-1))
}

func (l *ZapLogger) Sync() error {
	return l.base.Sync()
}

// Debugf logs a debug message.
func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Infof logs an info message.
func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warnf logs a warning message.
func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Warningf is an alias of Warnf.
func (l *ZapLogger) Warningf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Errorf logs an error message.
func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *ZapLogger) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}
