/* cmd/generate.go */

package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/config"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/escape"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/output"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/password"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_err"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Placeholders recognised in --format.
const (
	placeholderPassword = "{}"
	placeholderBcrypt   = "{bcrypt}"
)

func runGenerate(rc *randpass_io.RuntimeContext, cmd *cobra.Command, opts *config.Options, src crypto.Source) error {
	log := otelzap.Ctx(rc.Ctx)

	extra := opts.ExtraBytes()
	if len(extra) > opts.Length {
		return cerr.WithHintf(randpass_err.ErrTooManyExtraChars,
			"'--extra' has %d characters but '--length' is %d", len(extra), opts.Length)
	}

	policy := opts.Policy()
	alphabet, err := charset.Build(policy, extra)
	if err != nil {
		return err
	}

	rc.Attributes["policy"] = policy.Kind.String()
	log.Info("Alphabet built",
		zap.Stringer("policy", policy.Kind),
		zap.Int("alphabet_size", alphabet.Len()),
		zap.Int("extra_chars", len(extra)),
		zap.Int("length", opts.Length),
		zap.Int("count", opts.Number))

	if !opts.Quiet || opts.Fail {
		if err := reportEntropy(rc, output.NewMessenger(cmd.ErrOrStderr()), opts, alphabet, extra); err != nil {
			return err
		}
	}

	var delimiter *string
	if opts.DelimiterSet {
		delimiter = &opts.Delimiter
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	for i := 0; i < opts.Number; i++ {
		pw, err := password.Sample(src, opts.Length, alphabet, policy, extra)
		if err != nil {
			return err
		}
		line, err := formatPassword(opts.Format, pw)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(out, line, getNewline(delimiter, i == opts.Number-1, opts.NoNewline)); err != nil {
			return cerr.Wrap(err, "write password")
		}
	}
	if err := out.Flush(); err != nil {
		return cerr.Wrap(err, "write password")
	}

	log.Debug("Passwords written", zap.Int("count", opts.Number))
	return nil
}

// reportEntropy prints the strength of the configuration. With --fail a weak
// configuration becomes an error; --quiet silences the warning otherwise.
func reportEntropy(rc *randpass_io.RuntimeContext, msg *output.Messenger, opts *config.Options, alphabet charset.Alphabet, extra []byte) error {
	a, err := password.Assess(opts.Length, alphabet, extra)
	if err != nil {
		return err
	}

	rc.Log.Debug("Entropy assessed",
		zap.Float64("entropy_bits", a.Entropy),
		zap.Bool("secure", a.Secure))

	if a.Secure {
		if opts.Verbose {
			msg.Info(fmt.Sprintf("your password has %.2f bits of entropy", a.Entropy))
		}
		return nil
	}

	if opts.Fail {
		err := randpass_err.NewEntropyInsufficient(a.Entropy)
		if a.SuggestedLength != nil {
			err = randpass_err.WithLengthHint(err, *a.SuggestedLength)
		}
		return err
	}
	if opts.Quiet {
		return nil
	}

	msg.Warning(fmt.Sprintf("your password has only %.2f bits of entropy", a.Entropy))
	if a.SuggestedLength != nil {
		msg.Hint(randpass_err.LengthHint(*a.SuggestedLength))
	}
	return nil
}

// formatPassword substitutes pw, and its bcrypt hash when requested, into
// format. An empty format prints the password alone.
func formatPassword(format, pw string) (string, error) {
	if format == "" {
		return pw, nil
	}
	if strings.Contains(format, placeholderBcrypt) {
		hash, err := crypto.HashPassword(pw)
		if err != nil {
			return "", cerr.WithHint(err, "bcrypt accepts at most 72 bytes; lower '--length' or drop '{bcrypt}'")
		}
		format = strings.ReplaceAll(format, placeholderBcrypt, hash)
	}
	return strings.ReplaceAll(format, placeholderPassword, pw), nil
}

// getNewline returns what follows a password. A delimiter separates
// passwords and nothing follows the last one; without a delimiter every
// password ends in a newline unless it is the last and noNewline is set.
func getNewline(delimiter *string, lastLine, noNewline bool) string {
	if delimiter != nil {
		if lastLine {
			return ""
		}
		return escape.Parse(*delimiter)
	}
	if lastLine && noNewline {
		return ""
	}
	return "\n"
}
