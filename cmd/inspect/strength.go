// cmd/inspect/strength.go

package inspect

import (
	"fmt"
	"io"
	"strconv"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/config"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/output"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/password"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_cli"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newStrengthCmd() *cobra.Command {
	var userInputs []string

	cmd := &cobra.Command{
		Use:   "strength",
		Short: "Estimate the strength of an existing password read from stdin",
		Long: `Read one password from stdin and estimate its strength two ways: the
character-class entropy (length times log2 of the pool of classes present) and
a pattern-aware zxcvbn score from 0 to 4. On a terminal the password is not
echoed.`,
		Example: `  randpass | randpass inspect strength
  randpass inspect strength --user-input alice -o json`,
		Args: cobra.NoArgs,
		RunE: randpass_cli.Wrap(func(rc *randpass_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			opts, err := config.Load(cmd, viper.New())
			if err != nil {
				return err
			}

			secret, err := randpass_io.ReadSecret(rc, cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
			if err != nil {
				return err
			}

			strength := password.PatternStrength(secret, userInputs)
			otelzap.Ctx(rc.Ctx).Info("Strength inspected",
				zap.String("password", crypto.Redact(secret)),
				zap.Int("score", strength.Score))

			return output.Render(cmd.OutOrStdout(), opts.Output, strength, func(w io.Writer) error {
				return output.NewTableTo(w).
					WithHeaders("Property", "Value").
					AddRow("charset entropy (bits)", fmt.Sprintf("%.2f", strength.CharsetEntropy)).
					AddRow("zxcvbn entropy (bits)", fmt.Sprintf("%.2f", strength.Entropy)).
					AddRow("zxcvbn score (0-4)", strconv.Itoa(strength.Score)).
					AddRow("crack time", strength.CrackTimeDisplay).
					Render()
			})
		}),
	}
	addOutputFlag(cmd)
	cmd.Flags().StringSliceVar(&userInputs, "user-input", nil, "Words such as names that should count as guessable")
	return cmd
}
