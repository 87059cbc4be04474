package password

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharsetEntropy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		want     float64
	}{
		{"empty", "", 0},
		{"lowercase", "password", 8 * math.Log2(26)},
		{"digits", "1234", 4 * math.Log2(10)},
		{"alphanumeric", "aB3dE5", 6 * math.Log2(62)},
		{"lower digits symbol", "a1!", 3 * math.Log2(69)},
		{"all classes", "Aa1!", 4 * math.Log2(95)},
		{"space counts as symbol", "a b", 3 * math.Log2(59)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, CharsetEntropy(tt.password), 1e-9)
		})
	}
}

func TestPatternStrength(t *testing.T) {
	t.Parallel()

	weak := PatternStrength("password", nil)
	assert.Equal(t, 0, weak.Score)
	assert.InDelta(t, 37.60, weak.CharsetEntropy, 0.01)

	strong := PatternStrength("T7#qv9!Lm2@xZ4$wR8&k", nil)
	assert.Equal(t, 4, strong.Score)
	assert.Greater(t, strong.Entropy, weak.Entropy)
	assert.NotEmpty(t, strong.CrackTimeDisplay)
}

func TestPatternStrengthUserInputs(t *testing.T) {
	t.Parallel()

	without := PatternStrength("zebulonquartz", nil)
	with := PatternStrength("zebulonquartz", []string{"zebulonquartz"})
	assert.Less(t, with.Entropy, without.Entropy)
}
