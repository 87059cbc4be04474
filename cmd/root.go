/* cmd/root.go */

package cmd

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/randpass/cmd/inspect"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/config"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/output"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_cli"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_err"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewRootCmd builds the randpass command tree using the system random source.
func NewRootCmd() *cobra.Command {
	return newRootCmd(crypto.NewSystemSource())
}

func newRootCmd(src crypto.Source) *cobra.Command {
	root := &cobra.Command{
		Use:   "randpass",
		Short: "Password generator",
		Long: `randpass generates random passwords from a configurable alphabet and reports
how much entropy they carry. Passwords are written to stdout; warnings and hints
go to stderr.

Defaults can be set with RANDPASS_* environment variables or in
$XDG_CONFIG_HOME/randpass/config.yaml, using flag names as keys.`,
		Args:          cobra.NoArgs,
		Version:       randpass_io.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: randpass_cli.Wrap(func(rc *randpass_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			opts, err := config.Load(cmd, viper.New())
			if err != nil {
				return err
			}
			return runGenerate(rc, cmd, opts, src)
		}),
	}

	root.PersistentFlags().String(config.FlagConfig, "", "Config file (default $XDG_CONFIG_HOME/randpass/config.yaml)")
	config.AddAlphabetFlags(root.PersistentFlags())
	config.AddOutputFlags(root.Flags())
	config.MarkExclusive(root)

	root.AddCommand(inspect.NewInspectCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	defer func() {
		_ = logger.Sync()
	}()

	err := NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	logger.L().Debug("CLI execution error", zap.Error(err))
	ReportError(output.Stderr(), err)
	return randpass_err.GetExitCode(err)
}

// ReportError prints err and every hint attached to it.
func ReportError(msg *output.Messenger, err error) {
	msg.Error(err.Error())
	for _, hint := range randpass_err.Hints(err) {
		msg.Hint(hint)
	}
}
