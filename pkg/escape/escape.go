// Package escape expands backslash escape sequences typed on the command line,
// such as a `--delimiter '\0'`.
package escape

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

var simple = map[byte]rune{
	'0':  0x00,
	'a':  0x07,
	'b':  0x08,
	't':  '\t',
	'n':  '\n',
	'v':  0x0b,
	'f':  0x0c,
	'r':  '\r',
	'e':  0x1b,
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// Parse expands \0 \a \b \t \n \v \f \r \e \\ \' \" and \u followed by one to
// four hex digits. Unknown escapes and a trailing backslash are kept
// literally. A \u escape whose digits do not form a valid code point (or
// that has no digits) is dropped.
func Parse(input string) string {
	var sb strings.Builder
	sb.Grow(len(input))

	for i := 0; i < len(input); i++ {
		c := input[i]
		if c != '\\' || i+1 >= len(input) {
			sb.WriteByte(c)
			continue
		}

		next := input[i+1]
		if r, ok := simple[next]; ok {
			sb.WriteRune(r)
			i++
			continue
		}
		if next != 'u' {
			sb.WriteByte(c)
			continue
		}

		i += 2
		start := i
		for i < len(input) && i-start < 4 && isHex(input[i]) {
			i++
		}
		if cp, err := strconv.ParseUint(input[start:i], 16, 32); err == nil && utf8.ValidRune(rune(cp)) {
			sb.WriteRune(rune(cp))
		}
		i--
	}

	return sb.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
