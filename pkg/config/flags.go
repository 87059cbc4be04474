// pkg/config/flags.go

package config

import (
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// PolicyFlags are mutually exclusive on the command line.
var PolicyFlags = []string{FlagUppercase, FlagLowercase, FlagDigits, FlagSymbols, FlagBase, FlagRegex}

// AddAlphabetFlags registers the flags that shape the alphabet and length.
func AddAlphabetFlags(flags *pflag.FlagSet) {
	cli.AddIntFlag(flags, FlagLength, "l", DefaultLength, "Length of the password")
	cli.AddBoolFlag(flags, FlagUppercase, "u", false, "Use uppercase letters and digits only")
	cli.AddBoolFlag(flags, FlagLowercase, "L", false, "Use lowercase letters and digits only")
	cli.AddBoolFlag(flags, FlagDigits, "d", false, "Use digits only")
	cli.AddBoolFlag(flags, FlagSymbols, "s", false, "Use all letters, digits, and symbols")
	cli.AddStringFlag(flags, FlagBase, "b", "", "Custom base character set to use")
	cli.AddStringFlag(flags, FlagRegex, "r", DefaultRegex, "Regex pattern for allowed characters")
	cli.AddStringFlag(flags, FlagExtra, "e", "", "Extra characters to include")
}

// AddOutputFlags registers the flags that control how passwords are printed.
func AddOutputFlags(flags *pflag.FlagSet) {
	cli.AddIntFlag(flags, FlagNumber, "n", DefaultNumber, "Number of passwords to generate")
	cli.AddStringFlag(flags, FlagFormat, "f", "", "Output format; {} is the password, {bcrypt} its bcrypt hash")
	cli.AddBoolFlag(flags, FlagNoNewline, "N", false, "Do not print the trailing newline character")
	cli.AddStringFlag(flags, FlagDelimiter, "D", "", "Use a custom delimiter (escape sequences allowed)")
	cli.AddBoolFlag(flags, FlagQuiet, "q", false, "Do not warn about weak passwords")
	cli.AddBoolFlag(flags, FlagVerbose, "v", false, "Always output the strength of the password")
	cli.AddBoolFlag(flags, FlagFail, "F", false, "Terminate if the password is weak")
}

// MarkExclusive declares the flag groups that cannot be combined.
func MarkExclusive(cmd *cobra.Command) {
	cmd.MarkFlagsMutuallyExclusive(PolicyFlags...)
	if cmd.Flags().Lookup(FlagQuiet) != nil {
		cmd.MarkFlagsMutuallyExclusive(FlagQuiet, FlagVerbose)
	}
}
