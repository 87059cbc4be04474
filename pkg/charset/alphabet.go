// pkg/charset/alphabet.go

package charset

import (
	"regexp"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_err"
	cerr "github.com/cockroachdb/errors"
)

const (
	// PrintableFirst is the first printable ASCII byte (space).
	PrintableFirst byte = 0x20
	// PrintableLast is the last printable ASCII byte (tilde).
	PrintableLast byte = 0x7E
)

// Alphabet is a sorted, duplicate-free set of bytes passwords are drawn from.
type Alphabet []byte

// Len returns the number of distinct characters.
func (a Alphabet) Len() int { return len(a) }

// Contains reports whether c is part of the alphabet.
func (a Alphabet) Contains(c byte) bool {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case a[mid] == c:
			return true
		case a[mid] < c:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

func (a Alphabet) String() string { return string(a) }

// set is a presence table over all byte values. Iterating it in index order
// yields the ascending, deduplicated view.
type set [256]bool

func (s *set) addRange(first, last byte) {
	for c := int(first); c <= int(last); c++ {
		s[c] = true
	}
}

func (s *set) addBytes(b []byte) {
	for _, c := range b {
		s[c] = true
	}
}

func (s *set) alphabet() Alphabet {
	out := make(Alphabet, 0, 95)
	for c, ok := range s {
		if ok {
			out = append(out, byte(c))
		}
	}
	return out
}

// Build derives the alphabet for policy, unioned with every byte of extra.
//
// The result is sorted ascending with no duplicates. ErrNoValidChars is
// returned when the union is empty; RegexPattern policies may also fail with
// ErrInvalidRegex or ErrRegexMatchesNoChars.
func Build(policy Policy, extra []byte) (Alphabet, error) {
	var s set

	switch policy.Kind {
	case AllAlphanumeric:
		s.addRange('0', '9')
		s.addRange('A', 'Z')
		s.addRange('a', 'z')
	case UppercaseAndDigits:
		s.addRange('0', '9')
		s.addRange('A', 'Z')
	case LowercaseAndDigits:
		s.addRange('0', '9')
		s.addRange('a', 'z')
	case DigitsOnly:
		s.addRange('0', '9')
	case AllPrintable:
		s.addRange(PrintableFirst, PrintableLast)
	case ExplicitCharset:
		s.addBytes(policy.Charset)
	case RegexPattern:
		matched, err := FromRegex(policy.Pattern)
		if err != nil {
			return nil, err
		}
		s.addBytes(matched)
	default:
		return nil, cerr.AssertionFailedf("unknown charset policy kind %d", int(policy.Kind))
	}

	s.addBytes(extra)

	alphabet := s.alphabet()
	if len(alphabet) == 0 {
		return nil, randpass_err.ErrNoValidChars
	}
	return alphabet, nil
}

// FromRegex keeps every printable ASCII byte whose one-character string is
// matched by pattern. Anchors and other zero-width assertions therefore see
// a string of length one.
func FromRegex(pattern string) (Alphabet, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, cerr.Mark(cerr.Wrapf(err, "compile %q", pattern), randpass_err.ErrInvalidRegex)
	}

	out := make(Alphabet, 0, 95)
	for c := int(PrintableFirst); c <= int(PrintableLast); c++ {
		if re.MatchString(string(rune(c))) {
			out = append(out, byte(c))
		}
	}

	if len(out) == 0 {
		return nil, randpass_err.ErrRegexMatchesNoChars
	}
	return out, nil
}

// IsAlphanumeric reports whether c is in [0-9A-Za-z].
func IsAlphanumeric(c byte) bool {
	return ('0' <= c && c <= '9') || ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// Symbols returns the printable ASCII bytes that are not alphanumeric,
// space included.
func Symbols() Alphabet {
	out := make(Alphabet, 0, 33)
	for c := int(PrintableFirst); c <= int(PrintableLast); c++ {
		if !IsAlphanumeric(byte(c)) {
			out = append(out, byte(c))
		}
	}
	return out
}
