package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.jsonl")
	require.NoError(t, InitWithPath("randpass", path, false))

	_, span := Start(context.Background(), "generate")
	span.End()
	require.NoError(t, Shutdown(context.Background()))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestInitEnabledWritesSpans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "telemetry.jsonl")
	require.NoError(t, InitWithPath("randpass", path, true))
	t.Cleanup(func() { _ = InitWithPath("randpass", path, false) })

	_, span := Start(context.Background(), "generate")
	span.End()
	require.NoError(t, Shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Name":"generate"`)
}

func TestIsEnabledFromEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	t.Setenv("RANDPASS_TELEMETRY", "1")
	assert.True(t, IsEnabled())

	t.Setenv("RANDPASS_TELEMETRY", "0")
	assert.False(t, IsEnabled())
}

func TestIsEnabledFromMarker(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("RANDPASS_TELEMETRY", "")
	assert.False(t, IsEnabled())

	marker := filepath.Join(dir, "randpass", "telemetry_on")
	require.NoError(t, os.MkdirAll(filepath.Dir(marker), 0700))
	require.NoError(t, os.WriteFile(marker, nil, 0600))
	assert.True(t, IsEnabled())
}

func TestClassifyError(t *testing.T) {
	assert.Equal(t, "", ClassifyError(nil))
	assert.Equal(t, "validation", ClassifyError(randpass_err.ErrNoValidChars))
	assert.Equal(t, "weak_password", ClassifyError(randpass_err.NewEntropyInsufficient(40)))
	assert.Equal(t, "internal", ClassifyError(cerr.AssertionFailedf("boom")))
	assert.Equal(t, "system", ClassifyError(cerr.New("disk full")))
}
