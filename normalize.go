package calc

import (
	"strings"
	"unicode"
)

// Normalize returns s with all whitespace removed.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
