// Package password samples passwords from a charset policy and assesses their
// strength.
package password

import (
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/entropy"
)

// Generate builds the alphabet for policy and extra, then samples one
// password of the given length from it.
func Generate(src crypto.Source, length int, policy charset.Policy, extra []byte) (string, error) {
	alphabet, err := charset.Build(policy, extra)
	if err != nil {
		return "", err
	}
	return Sample(src, length, alphabet, policy, extra)
}

// Assessment describes the strength of passwords produced by one
// configuration.
type Assessment struct {
	Length          int     `json:"length" yaml:"length"`
	AlphabetSize    int     `json:"alphabet_size" yaml:"alphabet_size"`
	ExtraChars      int     `json:"extra_chars" yaml:"extra_chars"`
	Entropy         float64 `json:"entropy_bits" yaml:"entropy_bits"`
	Threshold       float64 `json:"threshold_bits" yaml:"threshold_bits"`
	Secure          bool    `json:"secure" yaml:"secure"`
	SuggestedLength *int    `json:"suggested_length,omitempty" yaml:"suggested_length,omitempty"`
}

// Assess computes the entropy of length-character passwords drawn from
// alphabet with extra forced in. The forced characters are always counted
// through their multiplicities, so an empty extra is equivalent to none.
// SuggestedLength is set only for insecure configurations that some length
// below entropy.MaxSuggestedLength would fix.
func Assess(length int, alphabet charset.Alphabet, extra []byte) (Assessment, error) {
	mults := charset.Multiplicities(extra)

	bits, err := entropy.Calculate(length, alphabet.Len(), mults)
	if err != nil {
		return Assessment{}, err
	}

	a := Assessment{
		Length:       length,
		AlphabetSize: alphabet.Len(),
		ExtraChars:   len(extra),
		Entropy:      bits,
		Threshold:    entropy.Threshold,
		Secure:       bits >= entropy.Threshold,
	}
	if !a.Secure {
		if suggested, ok := entropy.SuggestLength(alphabet.Len(), mults); ok {
			a.SuggestedLength = &suggested
		}
	}
	return a, nil
}
