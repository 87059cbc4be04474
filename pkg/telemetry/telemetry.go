// pkg/telemetry/telemetry.go
package telemetry

import (
	"context"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_err"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	tracer   trace.Tracer = noop.NewTracerProvider().Tracer("randpass")
	shutdown              = func(context.Context) error { return nil }
)

// Init configures OpenTelemetry; call this early in main().
func Init(service string) error {
	return InitWithPath(service, xdg.TelemetryFile(), IsEnabled())
}

// InitWithPath installs a file-backed tracer provider writing JSONL to path
// when enabled, and a no-op provider otherwise.
func InitWithPath(service, path string, enabled bool) error {
	if !enabled {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		shutdown = func(context.Context) error { return nil }
		return nil
	}

	if err := xdg.EnsureDir(path); err != nil {
		return cerr.Wrap(err, "failed to create telemetry directory")
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, xdg.FilePermOwnerReadWrite)
	if err != nil {
		return cerr.Wrap(err, "failed to open telemetry file")
	}

	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		_ = file.Close()
		return cerr.Wrap(err, "failed to create file exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(
			sdkresource.NewWithAttributes(
				semconv.SchemaURL,
				semconv.ServiceName(service),
				attribute.String("host.name", hostname()),
			),
		),
	)

	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(service)
	shutdown = func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		return err
	}
	return nil
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// Shutdown flushes pending spans and closes the telemetry file.
func Shutdown(ctx context.Context) error {
	return shutdown(ctx)
}

// IsEnabled reports whether RANDPASS_TELEMETRY=1 or the marker file exists.
func IsEnabled() bool {
	if v := strings.TrimSpace(os.Getenv("RANDPASS_TELEMETRY")); v != "" {
		return v == "1" || strings.EqualFold(v, "true")
	}
	_, err := os.Stat(xdg.TelemetryMarker())
	return err == nil
}

// ClassifyError names the error class recorded on command spans.
func ClassifyError(err error) string {
	switch {
	case err == nil:
		return ""
	case randpass_err.IsValidation(err):
		return "validation"
	case randpass_err.IsWeakPassword(err):
		return "weak_password"
	case randpass_err.GetExitCode(err) == 3:
		return "internal"
	default:
		return "system"
	}
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
