// pkg/password/sampler.go

package password

import (
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_err"
	cerr "github.com/cockroachdb/errors"
)

// Sample draws a password of the given length.
//
// Every byte of extra appears in the result with its multiplicity. Under the
// AllPrintable policy one non-alphanumeric printable character is added
// before filling, as long as extra leaves room for it. The remaining
// positions are drawn uniformly, with replacement, from alphabet, and the
// whole sequence is shuffled so forced characters sit at random positions.
func Sample(src crypto.Source, length int, alphabet charset.Alphabet, policy charset.Policy, extra []byte) (string, error) {
	out := make([]byte, 0, max(length, len(extra)))
	defer crypto.SecureZero(out[:cap(out)])
	out = append(out, extra...)

	if policy.Kind == charset.AllPrintable && len(out) < length {
		symbol, err := crypto.RandomChar(src, charset.Symbols())
		if err != nil {
			return "", cerr.Wrap(err, "draw symbol")
		}
		out = append(out, symbol)
	}

	if remaining := length - len(out); remaining > 0 {
		if alphabet.Len() == 0 {
			return "", randpass_err.ErrNoValidChars
		}
		for i := 0; i < remaining; i++ {
			c, err := crypto.RandomChar(src, alphabet)
			if err != nil {
				return "", cerr.Wrap(err, "draw character")
			}
			out = append(out, c)
		}
	}

	if err := src.Shuffle(out); err != nil {
		return "", cerr.Wrap(err, "shuffle password")
	}

	if !utf8.Valid(out) {
		return "", randpass_err.ErrDefault
	}
	return string(out), nil
}
