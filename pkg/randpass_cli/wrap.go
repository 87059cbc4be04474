// pkg/randpass_cli/wrap.go

package randpass_cli

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_err"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RunFunc is a command body running inside a RuntimeContext.
type RunFunc func(rc *randpass_io.RuntimeContext, cmd *cobra.Command, args []string) error

// Wrap ensures panic recovery, telemetry and lifecycle logging.
func Wrap(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}

		rc := randpass_io.NewContext(parent, cmd.CommandPath())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		randpass_io.LogRuntimeExecutionContext(rc)
		rc.Log.Debug("Command started", zap.Int("args", len(args)))

		err = fn(rc, cmd, args)
		if err != nil && randpass_err.GetExitCode(err) == 1 && !randpass_err.IsWeakPassword(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
