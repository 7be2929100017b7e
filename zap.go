package envassert

import (
	"go.uber.org/zap"
)

// zapLogger adapts a zap logger to the assertion Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Compile-time assertion: *zapLogger implements Logger.
var _ Logger = (*zapLogger)(nil)

func (l *zapLogger) must() *zap.SugaredLogger {
	if l == nil || l.sugar == nil {
		return zap.NewNop().Sugar()
	}

	return l.sugar
}

// Errorf implements Logger by logging at error level.
func (l *zapLogger) Errorf(format string, args ...any) {
	l.must().Errorf(format, args...)
}

// ZapLogger adapts a *zap.Logger for use as a Checker's failure logger.
// A nil logger yields a no-op adapter.
//
//nolint:ireturn
func ZapLogger(logger *zap.Logger) Logger {
	if logger == nil {
		return &zapLogger{}
	}

	return &zapLogger{sugar: logger.Sugar()}
}
