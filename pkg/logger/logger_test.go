package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"TRACE", zapcore.DebugLevel},
		{" warn ", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"dpanic", zapcore.DPanicLevel},
		{"", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestColouredLevel(t *testing.T) {
	assert.Contains(t, ColouredLevel(zapcore.InfoLevel), "INFO")
	assert.Contains(t, ColouredLevel(zapcore.PanicLevel), "FATAL")
	assert.Equal(t, zapcore.InvalidLevel.CapitalString(), ColouredLevel(zapcore.InvalidLevel))
	assert.NotContains(t, ColouredLevel(zapcore.InvalidLevel), "\033[")
}

func TestInitializeWritesJSONFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	path := filepath.Join(t.TempDir(), "state", "randpass.log")
	require.NoError(t, Initialize(Options{FilePath: path, FileLevel: zapcore.InfoLevel}))

	L().Info("hello", zap.String("k", "v"))
	require.NoError(t, Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestInitializeConsoleOnlyWhenLevelSet(t *testing.T) {
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	var buf bytes.Buffer
	require.NoError(t, Initialize(Options{Console: &buf}))
	L().Warn("silent")
	assert.Empty(t, buf.String())

	level := zapcore.WarnLevel
	require.NoError(t, Initialize(Options{Console: &buf, ConsoleLevel: &level}))
	L().Info("below threshold")
	L().Warn("shown")
	assert.NotContains(t, buf.String(), "below threshold")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitializeUnwritableFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	err := Initialize(Options{FilePath: filepath.Join(blocker, "sub", "randpass.log")})
	assert.Error(t, err)
	assert.NotNil(t, L())
}

func TestGenerateTraceID(t *testing.T) {
	a, b := GenerateTraceID(), GenerateTraceID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
