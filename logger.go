package bresp

import (
	"log"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
)

// Logger can be implemented to get informed about important states.
type Logger interface {
	LogUnhandledServeError(err error)
	LogDeliverError(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogUnhandledServeError(err error) {
	l.Logger.Printf("bresp: unhandled serve error: %s", err)
}

func (l stdLogger) LogDeliverError(err error) {
	l.Logger.Printf("bresp: error while delivering response: %s", err)
}

// NewStdLogger logs through a standard library logger.
func NewStdLogger(l *log.Logger) Logger {
	return stdLogger{l}
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogUnhandledServeError(err error) {
	l.Logger.Error("unhandled serve error", zap.Error(err))
}

func (l zapLogger) LogDeliverError(err error) {
	l.Logger.Error("error while delivering response", zap.Error(err))
}

// NewZapLogger logs through a structured zap logger.
func NewZapLogger(l *zap.Logger) Logger {
	return zapLogger{l}
}

type TestLogger struct {
	tb testing.TB

	NumLogUnhandledServeError int64
	NumLogDeliverError        int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogUnhandledServeError(err error) {
	atomic.AddInt64(&l.NumLogUnhandledServeError, 1)
	l.tb.Logf("bresp: unhandled serve error: %s", err)
}

func (l *TestLogger) LogDeliverError(err error) {
	atomic.AddInt64(&l.NumLogDeliverError, 1)
	l.tb.Logf("bresp: error while delivering response: %s", err)
}

var _ Logger = &TestLogger{}
