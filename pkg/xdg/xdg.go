// pkg/xdg/xdg.go

package xdg

import (
	"os"
	"path/filepath"
)

func GetEnvOrDefault(envVar, fallback string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return fallback
}

func XDGConfigPath(app, file string) string {
	base := GetEnvOrDefault("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config"))
	return filepath.Join(base, app, file)
}

func XDGStatePath(app, file string) string {
	base := GetEnvOrDefault("XDG_STATE_HOME", filepath.Join(os.Getenv("HOME"), ".local", "state"))
	return filepath.Join(base, app, file)
}

// ConfigFile is the default location of the randpass config file.
func ConfigFile() string {
	return XDGConfigPath(AppName, "config.yaml")
}

// LogFile is the default location of the randpass JSON log.
func LogFile() string {
	return XDGStatePath(AppName, "randpass.log")
}

// TelemetryFile is where spans are appended when telemetry is enabled.
func TelemetryFile() string {
	return XDGStatePath(AppName, "telemetry.jsonl")
}

// TelemetryMarker enables telemetry when it exists.
func TelemetryMarker() string {
	return XDGConfigPath(AppName, "telemetry_on")
}

// EnsureDir creates the parent directory of path, readable only by the owner.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), DirPermOwnerOnly)
}
