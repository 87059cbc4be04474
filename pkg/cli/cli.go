// pkg/cli/cli.go
//
// Flag and Viper helpers shared by randpass commands. Flags are declared
// with the Add* helpers and bound to a Viper instance so that environment
// variables and the config file can supply the same keys.
package cli

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AddStringFlag adds a persistent-or-local string flag.
func AddStringFlag(flags *pflag.FlagSet, name, shorthand, def, help string) {
	flags.StringP(name, shorthand, def, help)
}

// AddBoolFlag adds a boolean flag.
func AddBoolFlag(flags *pflag.FlagSet, name, shorthand string, def bool, help string) {
	flags.BoolP(name, shorthand, def, help)
}

// AddIntFlag adds an int flag.
func AddIntFlag(flags *pflag.FlagSet, name, shorthand string, def int, help string) {
	flags.IntP(name, shorthand, def, help)
}

// BindFlagsToViper binds every flag visible to cmd, inherited ones included.
func BindFlagsToViper(cmd *cobra.Command, v *viper.Viper) error {
	var result error
	bind := func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			result = multierror.Append(result, fmt.Errorf("bind --%s: %w", f.Name, err))
		}
	}
	cmd.Flags().VisitAll(bind)
	cmd.InheritedFlags().VisitAll(bind)
	return result
}

// SetViperEnvPrefix lets Viper read PREFIX_FLAG_NAME variables.
func SetViperEnvPrefix(v *viper.Viper, prefix string) {
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}
