// cmd/inspect/entropy.go

package inspect

import (
	"fmt"
	"io"
	"strconv"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/config"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/output"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/password"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_cli"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_err"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newEntropyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entropy",
		Short: "Report the entropy of passwords for the given flags",
		Long: `Compute the entropy of passwords generated with the given length, policy and
extra characters, and the shortest length that reaches the security threshold
when the configuration falls short.`,
		Example: `  randpass inspect entropy -l 12
  randpass inspect entropy -d -l 16 -o yaml`,
		Args: cobra.NoArgs,
		RunE: randpass_cli.Wrap(func(rc *randpass_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			opts, err := config.Load(cmd, viper.New())
			if err != nil {
				return err
			}

			extra := opts.ExtraBytes()
			if len(extra) > opts.Length {
				return randpass_err.ErrTooManyExtraChars
			}

			alphabet, err := charset.Build(opts.Policy(), extra)
			if err != nil {
				return err
			}

			assessment, err := password.Assess(opts.Length, alphabet, extra)
			if err != nil {
				return err
			}
			otelzap.Ctx(rc.Ctx).Info("Entropy inspected",
				zap.Float64("entropy_bits", assessment.Entropy),
				zap.Bool("secure", assessment.Secure))

			return output.Render(cmd.OutOrStdout(), opts.Output, assessment, func(w io.Writer) error {
				return assessmentTable(w, assessment)
			})
		}),
	}
	addOutputFlag(cmd)
	return cmd
}

func assessmentTable(w io.Writer, a password.Assessment) error {
	suggested := "-"
	if a.SuggestedLength != nil {
		suggested = strconv.Itoa(*a.SuggestedLength)
	}
	return output.NewTableTo(w).
		WithHeaders("Property", "Value").
		AddRow("length", strconv.Itoa(a.Length)).
		AddRow("alphabet size", strconv.Itoa(a.AlphabetSize)).
		AddRow("extra characters", strconv.Itoa(a.ExtraChars)).
		AddRow("entropy (bits)", fmt.Sprintf("%.2f", a.Entropy)).
		AddRow("threshold (bits)", fmt.Sprintf("%.2f", a.Threshold)).
		AddRow("secure", strconv.FormatBool(a.Secure)).
		AddRow("suggested length", suggested).
		Render()
}
