// pkg/logger/writer.go

package logger

import (
	"os"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// EnsureLogPermissions creates the log directory (0700) and file (0600).
func EnsureLogPermissions(logFilePath string) error {
	if err := xdg.EnsureDir(logFilePath); err != nil {
		return cerr.Wrap(err, "create log directory")
	}

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY, xdg.FilePermOwnerReadWrite)
	if err != nil {
		return cerr.Wrap(err, "create log file")
	}
	if err := file.Close(); err != nil {
		return cerr.Wrap(err, "close log file")
	}

	if err := os.Chmod(logFilePath, xdg.FilePermOwnerReadWrite); err != nil {
		return cerr.Wrap(err, "restrict log file permissions")
	}
	return nil
}

// GetLogFileWriter tries to create a file writer at the specified path.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	if err := EnsureLogPermissions(path); err != nil {
		return nil, cerr.Wrap(err, "log permission error")
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, xdg.FilePermOwnerReadWrite)
	if err != nil {
		return nil, cerr.Wrap(err, "failed to open log file")
	}

	return zapcore.AddSync(file), nil
}
