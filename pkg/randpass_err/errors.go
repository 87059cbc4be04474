// pkg/randpass_err/errors.go

package randpass_err

import (
	"fmt"

	cerr "github.com/cockroachdb/errors"
)

// Sentinel errors returned by the generation core. Callers match them with
// errors.Is; wrapped variants keep the sentinel reachable.
var (
	ErrDefault             = cerr.New("error")
	ErrInvalidRegex        = cerr.New("invalid regex pattern")
	ErrNoValidChars        = cerr.New("no valid characters left in the charset")
	ErrRegexMatchesNoChars = cerr.New("no valid characters found for the provided regex")
	ErrTooManyExtraChars   = cerr.New("too many extra characters")
)

// EntropyInsufficientError is raised by the CLI in fail-on-weak mode.
type EntropyInsufficientError struct {
	Entropy float64
}

func (e *EntropyInsufficientError) Error() string {
	return fmt.Sprintf("your password has only %.2f bits of entropy", e.Entropy)
}

// NewEntropyInsufficient returns an EntropyInsufficientError carrying the
// computed entropy.
func NewEntropyInsufficient(entropy float64) error {
	return &EntropyInsufficientError{Entropy: entropy}
}

// IsValidation reports whether err stems from invalid user input.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	if cerr.IsAny(err, ErrInvalidRegex, ErrNoValidChars, ErrRegexMatchesNoChars, ErrTooManyExtraChars) {
		return true
	}
	var classified *ClassifiedError
	return cerr.As(err, &classified) && classified.Category == CategoryValidation
}

// IsWeakPassword reports whether err is an EntropyInsufficientError.
func IsWeakPassword(err error) bool {
	var weak *EntropyInsufficientError
	return cerr.As(err, &weak)
}
