// pkg/config/config.go

package config

import (
	"os"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_err"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable randpass reads.
	EnvPrefix = "RANDPASS"

	// EnvFileVar names a dotenv file loaded before environment lookup.
	EnvFileVar = "RANDPASS_ENV_FILE"

	DefaultLength = 20
	DefaultNumber = 1
	DefaultRegex  = "[A-Za-z0-9]"
	DefaultOutput = "text"
)

// Flag names double as Viper keys, env var suffixes and config file keys.
const (
	FlagConfig    = "config"
	FlagLength    = "length"
	FlagUppercase = "uppercase"
	FlagLowercase = "lowercase"
	FlagDigits    = "digits"
	FlagSymbols   = "symbols"
	FlagBase      = "base"
	FlagRegex     = "regex"
	FlagExtra     = "extra"
	FlagNumber    = "number"
	FlagFormat    = "format"
	FlagNoNewline = "no-newline"
	FlagDelimiter = "delimiter"
	FlagQuiet     = "quiet"
	FlagVerbose   = "verbose"
	FlagFail      = "fail"
	FlagOutput    = "output"
)

// Options is the fully resolved command configuration.
type Options struct {
	Length    int    `mapstructure:"length" validate:"gte=0"`
	Uppercase bool   `mapstructure:"uppercase"`
	Lowercase bool   `mapstructure:"lowercase"`
	Digits    bool   `mapstructure:"digits"`
	Symbols   bool   `mapstructure:"symbols"`
	Base      string `mapstructure:"base"`
	Regex     string `mapstructure:"regex"`
	Extra     string `mapstructure:"extra"`

	Number    int    `mapstructure:"number" validate:"gte=0"`
	Format    string `mapstructure:"format"`
	NoNewline bool   `mapstructure:"no-newline"`
	Delimiter string `mapstructure:"delimiter"`

	Quiet   bool `mapstructure:"quiet"`
	Verbose bool `mapstructure:"verbose"`
	Fail    bool `mapstructure:"fail"`

	Output string `mapstructure:"output" validate:"omitempty,oneof=text json yaml"`

	// DelimiterSet distinguishes an empty delimiter from no delimiter.
	DelimiterSet bool `mapstructure:"-"`
}

// SetDefaults registers the defaults used when neither flag, env nor file
// supplies a key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(FlagLength, DefaultLength)
	v.SetDefault(FlagNumber, DefaultNumber)
	v.SetDefault(FlagRegex, DefaultRegex)
	v.SetDefault(FlagOutput, DefaultOutput)
}

// Load resolves Options for cmd. Precedence is flag, RANDPASS_* env,
// config file, then defaults.
func Load(cmd *cobra.Command, v *viper.Viper) (*Options, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	SetDefaults(v)
	cli.SetViperEnvPrefix(v, EnvPrefix)
	if err := cli.BindFlagsToViper(cmd, v); err != nil {
		return nil, randpass_err.NewInternalError("failed to bind flags", err)
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	opts := &Options{}
	if err := v.Unmarshal(opts); err != nil {
		return nil, randpass_err.NewValidationError("invalid configuration", err,
			"check the types of the values in your config file and RANDPASS_* variables")
	}
	opts.DelimiterSet = v.IsSet(FlagDelimiter)

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks value ranges.
func (o *Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return randpass_err.NewValidationError("invalid configuration", err,
			"'--length' must be 0 or more, '--number' 0 or more, '--output' one of text, json, yaml")
	}
	return nil
}

// Policy picks the alphabet policy. When several are set, uppercase wins
// over lowercase, then digits, symbols, a non-empty base, a non-empty regex,
// and finally plain alphanumeric.
func (o *Options) Policy() charset.Policy {
	switch {
	case o.Uppercase:
		return charset.UppercaseDigits()
	case o.Lowercase:
		return charset.LowercaseDigits()
	case o.Digits:
		return charset.Digits()
	case o.Symbols:
		return charset.Printable()
	case o.Base != "":
		return charset.Explicit([]byte(o.Base))
	case o.Regex != "":
		return charset.Regex(o.Regex)
	default:
		return charset.Alphanumeric()
	}
}

// ExtraBytes returns the forced characters as bytes.
func (o *Options) ExtraBytes() []byte {
	return []byte(o.Extra)
}

func loadEnvFile() error {
	path := os.Getenv(EnvFileVar)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return randpass_err.NewFilesystemError("failed to load env file "+path, err,
			"unset "+EnvFileVar+" or point it at a readable dotenv file")
	}
	return nil
}

func readConfigFile(v *viper.Viper) error {
	path := v.GetString(FlagConfig)
	explicit := path != ""
	if !explicit {
		path = xdg.ConfigFile()
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return randpass_err.NewFilesystemError("cannot read config file "+path, err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return randpass_err.NewValidationError("malformed config file "+path,
			cerr.Wrap(err, "read config"), "the config file must be YAML with flag names as keys")
	}
	return nil
}
