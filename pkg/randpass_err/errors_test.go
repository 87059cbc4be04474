package randpass_err

import (
	"errors"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"invalid regex", ErrInvalidRegex, 2},
		{"wrapped no valid chars", cerr.Wrap(ErrNoValidChars, "build"), 2},
		{"marked regex error", cerr.Mark(errors.New("parse"), ErrInvalidRegex), 2},
		{"too many extra", cerr.WithHint(ErrTooManyExtraChars, "shorten"), 2},
		{"regex matches nothing", ErrRegexMatchesNoChars, 2},
		{"validation", NewValidationError("bad config", errors.New("length"), "fix it"), 2},
		{"filesystem", NewFilesystemError("no log dir", errors.New("EACCES")), 1},
		{"internal", NewInternalError("bind", errors.New("boom")), 3},
		{"default", ErrDefault, 3},
		{"assertion", cerr.AssertionFailedf("unreachable"), 3},
		{"weak password", NewEntropyInsufficient(40), 1},
		{"other", errors.New("disk full"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestEntropyInsufficientError(t *testing.T) {
	err := NewEntropyInsufficient(59.5432)
	assert.EqualError(t, err, "your password has only 59.54 bits of entropy")
	assert.True(t, IsWeakPassword(err))
	assert.True(t, IsWeakPassword(cerr.Wrap(err, "generate")))
	assert.False(t, IsWeakPassword(ErrDefault))
	assert.False(t, IsValidation(err))
}

func TestSentinelMessages(t *testing.T) {
	assert.EqualError(t, ErrDefault, "error")
	assert.EqualError(t, ErrInvalidRegex, "invalid regex pattern")
	assert.EqualError(t, ErrNoValidChars, "no valid characters left in the charset")
	assert.EqualError(t, ErrRegexMatchesNoChars, "no valid characters found for the provided regex")
	assert.EqualError(t, ErrTooManyExtraChars, "too many extra characters")
}

func TestLengthHint(t *testing.T) {
	assert.Nil(t, WithLengthHint(nil, 13))
	assert.Nil(t, Hints(nil))

	err := WithLengthHint(NewEntropyInsufficient(47.63), 13)
	assert.Equal(t, []string{"set '--length' to '13' or longer (use '--quiet' to hide this message)"}, Hints(err))
	assert.Equal(t, LengthHint(13), Hints(err)[0])
	assert.True(t, IsWeakPassword(err))
}

func TestClassifiedError(t *testing.T) {
	err := NewValidationError("invalid configuration", errors.New("number must be at least 1"), "pass '--number 1'")
	assert.Contains(t, err.Error(), "invalid configuration: number must be at least 1")
	assert.Contains(t, err.Error(), "How to fix:\n  1. pass '--number 1'")
	assert.True(t, IsValidation(err))

	cause := errors.New("cause")
	assert.ErrorIs(t, NewInternalError("x", cause), cause)
}
