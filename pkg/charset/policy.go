// pkg/charset/policy.go

// Package charset derives the sampling alphabet for a password policy.
//
// An alphabet is always a sorted, duplicate-free, non-empty byte slice. It is
// rebuilt on every call from the policy and the optional extra characters; the
// package keeps no state between calls.
package charset

import "fmt"

// Kind enumerates the supported policy variants.
type Kind int

const (
	// AllAlphanumeric allows [0-9A-Za-z].
	AllAlphanumeric Kind = iota
	// UppercaseAndDigits allows [0-9A-Z].
	UppercaseAndDigits
	// LowercaseAndDigits allows [0-9a-z].
	LowercaseAndDigits
	// DigitsOnly allows [0-9].
	DigitsOnly
	// AllPrintable allows every printable ASCII byte, 0x20 through 0x7E.
	AllPrintable
	// ExplicitCharset uses the bytes supplied in Policy.Charset verbatim.
	ExplicitCharset
	// RegexPattern keeps the printable bytes matched by Policy.Pattern.
	RegexPattern
)

func (k Kind) String() string {
	switch k {
	case AllAlphanumeric:
		return "alphanumeric"
	case UppercaseAndDigits:
		return "uppercase-and-digits"
	case LowercaseAndDigits:
		return "lowercase-and-digits"
	case DigitsOnly:
		return "digits"
	case AllPrintable:
		return "printable"
	case ExplicitCharset:
		return "charset"
	case RegexPattern:
		return "regex"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Policy selects which characters a password may be drawn from.
// Charset is only read for ExplicitCharset, Pattern only for RegexPattern.
type Policy struct {
	Kind    Kind
	Charset []byte
	Pattern string
}

func Alphanumeric() Policy { return Policy{Kind: AllAlphanumeric} }
func UppercaseDigits() Policy { return Policy{Kind: UppercaseAndDigits} }
func LowercaseDigits() Policy { return Policy{Kind: LowercaseAndDigits} }
func Digits() Policy { return Policy{Kind: DigitsOnly} }
func Printable() Policy { return Policy{Kind: AllPrintable} }
func Explicit(chars []byte) Policy { return Policy{Kind: ExplicitCharset, Charset: chars} }
func Regex(pattern string) Policy { return Policy{Kind: RegexPattern, Pattern: pattern} }

// String renders the policy for logs and reports.
func (p Policy) String() string {
	switch p.Kind {
	case ExplicitCharset:
		return fmt.Sprintf("charset(%q)", p.Charset)
	case RegexPattern:
		return fmt.Sprintf("regex(%q)", p.Pattern)
	default:
		return p.Kind.String()
	}
}
