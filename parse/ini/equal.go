package ini

import (
	"unicode"
	"unicode/utf8"
)

// NamesEqual compares two key or section names the way the native profile
// API does: ordinal and case-insensitive, independent of locale. Runes are
// compared after simple upper-case mapping, except for the dotless i and
// the long s, which keep their own case.
func NamesEqual(a, b string) bool {
	for a != "" && b != "" {
		ra, sa := utf8.DecodeRuneInString(a)
		rb, sb := utf8.DecodeRuneInString(b)
		if ra != rb && upper(ra) != upper(rb) {
			return false
		}
		// invalid bytes only match themselves
		if ra == utf8.RuneError && (sa != sb || a[:sa] != b[:sb]) {
			return false
		}
		a, b = a[sa:], b[sb:]
	}
	return a == "" && b == ""
}

func upper(r rune) rune {
	switch r {
	case '\u0131', '\u017F':
		return r
	}
	return unicode.ToUpper(r)
}
