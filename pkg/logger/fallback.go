/* pkg/logger/fallback.go */

package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// newConsoleCore writes human-readable entries to w, colouring levels only
// when w is a terminal.
func newConsoleCore(w io.Writer, level zapcore.Level) zapcore.Core {
	cfg := DefaultConsoleEncoderConfig()
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		cfg.EncodeLevel = colouredLevelEncoder
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(zapcore.AddSync(w)), level)
}

// NewFallbackLogger logs to stderr when no log file can be opened. It uses
// the LOG_LEVEL level, or Warn when LOG_LEVEL is unset.
func NewFallbackLogger() *zap.Logger {
	level := zapcore.WarnLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level = ParseLogLevel(raw)
	}
	core := newConsoleCore(os.Stderr, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}
