// cmd/inspect/inspect.go
/*
Copyright © 2025 CODE MONKEY CYBERSECURITY git@cybermonkey.net.au

*/
package inspect

import (
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/config"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/output"
	"github.com/spf13/cobra"
)

// NewInspectCmd groups the read-only commands that explain what randpass
// would generate without generating anything.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect",
		Short:   "Inspect alphabets, entropy and password strength",
		Aliases: []string{"show"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newCharsetCmd(), newEntropyCmd(), newStrengthCmd())
	return cmd
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(config.FlagOutput, "o", output.FormatText, "Output format: text, json or yaml")
}
