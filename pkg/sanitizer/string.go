package sanitizer

import (
	"strings"
	"unicode"
)

func Trim(s string) string {
	return strings.TrimSpace(s)
}

func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// KeepDigits drops everything except ASCII decimal digits.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// RemoveWhitespace removes every Unicode whitespace rune, including the ones
// inside the string.
func RemoveWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// RemoveChars removes every occurrence of the runes listed in chars.
func RemoveChars(s string, chars string) string {
	if chars == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

func RemoveHyphens(s string) string {
	return RemoveChars(s, "-")
}
