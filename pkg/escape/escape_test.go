package escape

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{`Hello\0World`, "Hello\x00World"},
		{`Hello\aWorld`, "Hello\aWorld"},
		{`Hello\bWorld`, "Hello\bWorld"},
		{`Hello\tWorld`, "Hello\tWorld"},
		{`Hello\nWorld`, "Hello\nWorld"},
		{`Hello\vWorld`, "Hello\vWorld"},
		{`Hello\fWorld`, "Hello\fWorld"},
		{`Hello\rWorld`, "Hello\rWorld"},
		{`Hello\eWorld`, "Hello\x1bWorld"},
		{`Hello\\World`, `Hello\World`},
		{`Hello\'World`, "Hello'World"},
		{`Hello\"World`, `Hello"World`},
		{`Hello\qWorld`, `Hello\qWorld`},
		{`trailing\`, `trailing\`},
		{`\u41bcZ`, "\u41bcZ"},
		{`\ue9t\ue9`, "\u00e9t\u00e9"},
		{`\u263a!`, "\u263a!"},
		{`\u2603x`, "\u2603x"},
		{`\u12345`, "\u12345"},
		{`\uzz`, "zz"},
		{`\u`, ""},
		{`\ud800`, ""},
		{`, `, ", "},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParseUnicodeWidths(t *testing.T) {
	t.Parallel()
	for _, width := range []int{1, 2, 3, 4} {
		limit := 1 << (4 * width)
		for cp := 0; cp < limit; cp += 1 + cp/64 {
			if !utf8.ValidRune(rune(cp)) {
				continue
			}
			input := fmt.Sprintf("Hello\\u%0*xWorld", width, cp)
			want := fmt.Sprintf("Hello%cWorld", rune(cp))
			if got := Parse(input); got != want {
				t.Fatalf("Parse(%q) = %q, want %q", input, got, want)
			}
		}
	}
}
