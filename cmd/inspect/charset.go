// cmd/inspect/charset.go

package inspect

import (
	"fmt"
	"io"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/config"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/output"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_cli"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// CharsetReport is the alphabet a policy and extra characters resolve to.
type CharsetReport struct {
	Policy   string `json:"policy" yaml:"policy"`
	Size     int    `json:"size" yaml:"size"`
	Alphabet string `json:"alphabet" yaml:"alphabet"`
}

func newCharsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charset",
		Short: "Print the alphabet passwords are drawn from",
		Long: `Print the sorted, de-duplicated alphabet that the policy flags and --extra
resolve to. The same flags as the password generator apply.`,
		Example: `  randpass inspect charset -r '[a-f0-9]'
  randpass inspect charset -d -e '#!' -o json`,
		Args: cobra.NoArgs,
		RunE: randpass_cli.Wrap(func(rc *randpass_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			opts, err := config.Load(cmd, viper.New())
			if err != nil {
				return err
			}

			policy := opts.Policy()
			alphabet, err := charset.Build(policy, opts.ExtraBytes())
			if err != nil {
				return err
			}
			otelzap.Ctx(rc.Ctx).Info("Alphabet inspected",
				zap.Stringer("policy", policy.Kind),
				zap.Int("alphabet_size", alphabet.Len()))

			report := CharsetReport{Policy: policy.String(), Size: alphabet.Len(), Alphabet: alphabet.String()}
			return output.Render(cmd.OutOrStdout(), opts.Output, report, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, report.Alphabet)
				return err
			})
		}),
	}
	addOutputFlag(cmd)
	return cmd
}
