package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplicities(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{name: "hello", input: "hello", want: []int{1, 1, 1, 2}},
		{name: "all distinct", input: "01234", want: []int{1, 1, 1, 1, 1}},
		{name: "single repeated", input: "00000", want: []int{5}},
		{name: "mixed", input: "000001111222334", want: []int{1, 2, 3, 4, 5}},
		{name: "empty", input: "", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Multiplicities([]byte(tt.input)))
		})
	}
}

func TestMultiplicitiesIgnoresOrder(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Multiplicities([]byte("aabbbc")), Multiplicities([]byte("cbabab")))
}
