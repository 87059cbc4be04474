// pkg/password/strength.go

package password

import (
	"math"
	"slices"

	"github.com/nbutton23/zxcvbn-go"
)

// CharsetEntropy is the naive estimate length * log2(pool), where the pool
// adds 10 for digits, 26 for each letter case and 33 for anything else
// present in the password. It ignores patterns and dictionary words.
func CharsetEntropy(password string) float64 {
	runes := []rune(password)
	if len(runes) == 0 {
		return 0
	}

	pool := 0
	if slices.ContainsFunc(runes, func(r rune) bool { return r >= '0' && r <= '9' }) {
		pool += 10
	}
	if slices.ContainsFunc(runes, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		pool += 26
	}
	if slices.ContainsFunc(runes, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		pool += 26
	}
	if slices.ContainsFunc(runes, func(r rune) bool {
		return r < '0' || (r > '9' && r < 'A') || (r > 'Z' && r < 'a') || r > 'z'
	}) {
		pool += 33
	}

	return float64(len(runes)) * math.Log2(float64(pool))
}

// Strength is a pattern-aware estimate of how guessable a password is.
type Strength struct {
	// Score ranges from 0 (trivially guessable) to 4 (very unguessable).
	Score            int     `json:"score" yaml:"score"`
	Entropy          float64 `json:"entropy_bits" yaml:"entropy_bits"`
	CharsetEntropy   float64 `json:"charset_entropy_bits" yaml:"charset_entropy_bits"`
	CrackTimeSeconds float64 `json:"crack_time_seconds" yaml:"crack_time_seconds"`
	CrackTimeDisplay string  `json:"crack_time" yaml:"crack_time"`
}

// PatternStrength runs zxcvbn over password. userInputs are extra words
// (names, site) that should count as guessable.
func PatternStrength(password string, userInputs []string) Strength {
	result := zxcvbn.PasswordStrength(password, userInputs)
	return Strength{
		Score:            result.Score,
		Entropy:          result.Entropy,
		CharsetEntropy:   CharsetEntropy(password),
		CrackTimeSeconds: result.CrackTime,
		CrackTimeDisplay: result.CrackTimeDisplay,
	}
}
