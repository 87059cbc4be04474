/* cmd/version.go */

package cmd

import (
	"fmt"
	"runtime"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_cli"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_io"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the randpass version",
		Args:  cobra.NoArgs,
		RunE: randpass_cli.Wrap(func(rc *randpass_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "randpass %s (%s/%s, %s)\n",
				randpass_io.Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
			return err
		}),
	}
}
