// Package console is the framework's logging surface. Under js/wasm the
// output lands in the browser console; natively it goes to stderr.
package console

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = New(zapcore.InfoLevel).Sugar()
)

// New builds a colored console logger writing to stderr at the given level.
func New(level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
}

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l.Sugar()
	mu.Unlock()
}

// Logger returns the current package logger.
func Logger() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Log writes an info level entry.
func Log(args ...any) {
	Logger().Info(args...)
}

// Debug writes a debug level entry.
func Debug(args ...any) {
	Logger().Debug(args...)
}

// Warn writes a warn level entry.
func Warn(args ...any) {
	Logger().Warn(args...)
}

// Error writes an error level entry.
func Error(args ...any) {
	Logger().Error(args...)
}
