package logger

import (
	"io"
	"os"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/xdg"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Options controls where log entries go.
//
// stdout is reserved for passwords and stderr for user-facing messages, so
// the console sink stays off unless ConsoleLevel is set explicitly.
type Options struct {
	// FilePath receives JSON entries at FileLevel. Empty disables file logging.
	FilePath  string
	FileLevel zapcore.Level

	// Console receives human-readable entries at *ConsoleLevel when non-nil.
	Console      io.Writer
	ConsoleLevel *zapcore.Level
}

// OptionsFromEnv builds Options from LOG_LEVEL and the XDG state directory.
func OptionsFromEnv() Options {
	opts := Options{
		FilePath:  xdg.LogFile(),
		FileLevel: ParseLogLevel(os.Getenv("LOG_LEVEL")),
		Console:   os.Stderr,
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level := ParseLogLevel(raw)
		opts.ConsoleLevel = &level
	}
	return opts
}

// Initialize builds the global logger from opts. A log file that cannot be
// opened is skipped; the returned error reports it but the logger is still
// usable.
func Initialize(opts Options) error {
	var (
		cores   []zapcore.Core
		fileErr error
	)

	if opts.FilePath != "" {
		writer, err := GetLogFileWriter(opts.FilePath)
		if err != nil {
			fileErr = err
		} else {
			jsonCfg := zap.NewProductionEncoderConfig()
			jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
			jsonCfg.EncodeLevel = zapcore.CapitalLevelEncoder
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), writer, opts.FileLevel))
		}
	}

	if opts.Console != nil && opts.ConsoleLevel != nil {
		cores = append(cores, newConsoleCore(opts.Console, *opts.ConsoleLevel))
	}

	if len(cores) == 0 {
		SetLogger(zap.NewNop())
		return fileErr
	}

	SetLogger(zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))
	return fileErr
}

// L returns the global logger, or a no-op logger before Initialize.
func L() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// SetLogger installs l as the global zap and otelzap logger.
func SetLogger(l *zap.Logger) {
	log = l
	zap.ReplaceGlobals(l)
	otelzap.ReplaceGlobals(otelzap.New(l))
}

// Sync flushes any buffered log entries. Should be called before the application exits.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}
