// pkg/randpass_err/wrap.go

package randpass_err

import (
	"fmt"

	cerr "github.com/cockroachdb/errors"
)

// LengthHint tells the user which length would make the password secure.
func LengthHint(suggested int) string {
	return fmt.Sprintf("set '--length' to '%d' or longer (use '--quiet' to hide this message)", suggested)
}

// WithLengthHint attaches the suggested password length as a user-facing hint.
func WithLengthHint(err error, suggested int) error {
	if err == nil {
		return nil
	}
	return cerr.WithHint(err, LengthHint(suggested))
}

// Hints returns every hint attached anywhere in the error chain.
func Hints(err error) []string {
	if err == nil {
		return nil
	}
	return cerr.GetAllHints(err)
}
