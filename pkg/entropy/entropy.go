// pkg/entropy/entropy.go

// Package entropy computes the exact log2 entropy of generated passwords and
// suggests the shortest length that reaches Threshold.
//
// A password of length n drawn from an alphabet of size s, with m forced
// characters whose repetition structure is c_1..c_k (sum m), has
//
//	log2 C(n, m) + log2(m! / (c_1! ... c_k!)) + (n - m) * log2(s)
//
// bits of entropy: which positions hold forced characters, how the forced
// multiset is ordered among them, and the freely drawn remainder.
package entropy

import (
	"math"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/randpass_err"
	cerr "github.com/cockroachdb/errors"
)

// Threshold is the minimum entropy, in bits, of a password considered secure.
const Threshold = 72.0

// MaxSuggestedLength bounds the SuggestLength scan (exclusive).
const MaxSuggestedLength = 1000

// Log2Factorial returns log2(n!) as a running sum of log2(i) for i in 1..n.
func Log2Factorial(n int) float64 {
	sum := 0.0
	for i := 1; i <= n; i++ {
		sum += math.Log2(float64(i))
	}
	return sum
}

// Log2Binomial returns log2(C(n, k)). It panics when n < k.
func Log2Binomial(n, k int) float64 {
	if k < 0 || n < k {
		panic(cerr.AssertionFailedf("log2 binomial coefficient undefined for n=%d, k=%d", n, k))
	}
	return Log2Factorial(n) - Log2Factorial(k) - Log2Factorial(n-k)
}

// Calculate returns the entropy in bits of a password of the given length.
//
// A nil multiplicities slice means no forced characters: every position is
// drawn uniformly from the alphabet. Otherwise the counts describe the forced
// multiset (see charset.Multiplicities) and the password must be long enough
// to hold all of them; a shorter length yields an error matching
// randpass_err.ErrTooManyExtraChars.
func Calculate(length, alphabetSize int, multiplicities []int) (float64, error) {
	if length < 0 {
		return 0, cerr.Mark(cerr.Newf("password length %d is negative", length), randpass_err.ErrTooManyExtraChars)
	}
	if alphabetSize < 1 {
		return 0, randpass_err.ErrNoValidChars
	}

	perPosition := math.Log2(float64(alphabetSize))

	if multiplicities == nil {
		return float64(length) * perPosition, nil
	}

	forced := 0
	for _, count := range multiplicities {
		if count < 1 {
			return 0, cerr.AssertionFailedf("multiplicity %d is not positive", count)
		}
		forced += count
	}

	if length < forced {
		return 0, cerr.Mark(
			cerr.Newf("password length %d cannot hold %d extra characters", length, forced),
			randpass_err.ErrTooManyExtraChars,
		)
	}

	arrangements := Log2Factorial(forced)
	for _, count := range multiplicities {
		arrangements -= Log2Factorial(count)
	}

	return Log2Binomial(length, forced) + arrangements + float64(length-forced)*perPosition, nil
}

// SuggestLength returns the shortest length in [1, MaxSuggestedLength) whose
// entropy reaches Threshold. Lengths too short for the forced characters are
// skipped. ok is false when no length in range qualifies, e.g. for an
// alphabet of a single character.
func SuggestLength(alphabetSize int, multiplicities []int) (length int, ok bool) {
	for n := 1; n < MaxSuggestedLength; n++ {
		bits, err := Calculate(n, alphabetSize, multiplicities)
		if err != nil {
			continue
		}
		if bits >= Threshold {
			return n, true
		}
	}
	return 0, false
}
