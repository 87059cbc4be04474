package charset

import (
	"testing"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byteRange(first, last byte) []byte {
	out := make([]byte, 0, int(last-first)+1)
	for c := int(first); c <= int(last); c++ {
		out = append(out, byte(c))
	}
	return out
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var (
	digits = byteRange('0', '9')
	upper  = byteRange('A', 'Z')
	lower  = byteRange('a', 'z')
)

func TestBuild(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		policy Policy
		extra  []byte
		want   []byte
	}{
		{
			name:   "alphanumeric",
			policy: Alphanumeric(),
			want:   concat(digits, upper, lower),
		},
		{
			name:   "uppercase and digits",
			policy: UppercaseDigits(),
			want:   concat(digits, upper),
		},
		{
			name:   "lowercase and digits",
			policy: LowercaseDigits(),
			want:   concat(digits, lower),
		},
		{
			name:   "digits only",
			policy: Digits(),
			want:   digits,
		},
		{
			name:   "all printable",
			policy: Printable(),
			want:   byteRange(' ', '~'),
		},
		{
			name:   "explicit charset is deduplicated and sorted",
			policy: Explicit([]byte("gfedcbaabc")),
			want:   []byte("abcdefg"),
		},
		{
			name:   "explicit charset keeps non-printable bytes",
			policy: Explicit([]byte{0xff, 0x01, 'a'}),
			want:   []byte{0x01, 'a', 0xff},
		},
		{
			name:   "regex with duplicate extras",
			policy: Regex("[0-9]"),
			extra:  []byte("00000"),
			want:   digits,
		},
		{
			name:   "extras outside the policy join the alphabet",
			policy: Digits(),
			extra:  []byte("!@#$%"),
			want:   concat([]byte("!#$%"), digits, []byte("@")),
		},
		{
			name:   "empty explicit charset rescued by extras",
			policy: Explicit(nil),
			extra:  []byte("zz"),
			want:   []byte("z"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Build(tt.policy, tt.extra)
			require.NoError(t, err)
			assert.Equal(t, Alphabet(tt.want), got)
		})
	}
}

func TestBuildIsStrictlyAscending(t *testing.T) {
	t.Parallel()
	policies := []Policy{
		Alphanumeric(), UppercaseDigits(), LowercaseDigits(), Digits(), Printable(),
		Explicit([]byte("the quick brown fox")), Regex(`[[:punct:]]`),
	}
	for _, p := range policies {
		got, err := Build(p, []byte("zzyyxx\x00"))
		require.NoError(t, err, p.String())
		for i := 1; i < len(got); i++ {
			assert.Less(t, got[i-1], got[i], "policy %s at index %d", p, i)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()
	first, err := Build(Explicit([]byte("q9w8e7r6t5y4")), []byte("!!??"))
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := Build(Explicit([]byte("q9w8e7r6t5y4")), []byte("!!??"))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		policy Policy
		extra  []byte
		want   error
	}{
		{
			name:   "empty explicit charset",
			policy: Explicit([]byte{}),
			want:   randpass_err.ErrNoValidChars,
		},
		{
			name:   "unbalanced bracket",
			policy: Regex("[a-z"),
			want:   randpass_err.ErrInvalidRegex,
		},
		{
			name:   "regex matching nothing printable",
			policy: Regex(`\x00`),
			want:   randpass_err.ErrRegexMatchesNoChars,
		},
		{
			name:   "regex failure is not rescued by extras",
			policy: Regex("[a-z"),
			extra:  []byte("abc"),
			want:   randpass_err.ErrInvalidRegex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Build(tt.policy, tt.extra)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, cerr.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestFromRegex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pattern string
		want    []byte
	}{
		{name: "lowercase class", pattern: "[a-z]", want: lower},
		{name: "anchored single char", pattern: "^[A-C]$", want: []byte("ABC")},
		{name: "two-char pattern never matches a single char", pattern: "ab|[0-1]", want: []byte("01")},
		{name: "space is printable", pattern: `\s`, want: []byte(" ")},
		{name: "dot matches every printable", pattern: ".", want: byteRange(' ', '~')},
		{name: "negated class", pattern: "[^ -}]", want: []byte("~")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FromRegex(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, Alphabet(tt.want), got)
		})
	}
}

func TestFromRegexInvalid(t *testing.T) {
	t.Parallel()
	_, err := FromRegex("[a-z")
	require.Error(t, err)
	assert.True(t, cerr.Is(err, randpass_err.ErrInvalidRegex))
	assert.True(t, randpass_err.IsValidation(err))
}

func TestAlphabetContains(t *testing.T) {
	t.Parallel()
	a, err := Build(Explicit([]byte("aceg")), nil)
	require.NoError(t, err)
	for _, c := range []byte("aceg") {
		assert.True(t, a.Contains(c), string(c))
	}
	for _, c := range []byte("bdfh ") {
		assert.False(t, a.Contains(c), string(c))
	}
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, "aceg", a.String())
}

func TestSymbols(t *testing.T) {
	t.Parallel()
	symbols := Symbols()
	assert.Len(t, symbols, 95-62)
	for _, c := range symbols {
		assert.False(t, IsAlphanumeric(c), string(c))
	}
	assert.True(t, symbols.Contains(' '))
	assert.True(t, symbols.Contains('~'))
}
