package sanitizer

import "golang.org/x/text/unicode/norm"

// NormalizeUnicode converts s to NFC so that a precomposed "é" and an "e"
// followed by a combining accent compare equal.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}
