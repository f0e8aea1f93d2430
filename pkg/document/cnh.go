package document

import (
	"regexp"

	"github.com/mauriciobenjamin700/regexm/pkg/sanitizer"
)

const cnhBaseLength = 9

var cnhRegex = regexp.MustCompile(`^\d{11}$`)

// CNHCheckDigits computes both CNH verifier digits from the first nine
// digits of base. Non-digit characters are ignored. ok is false when fewer
// than nine digits are present.
func CNHCheckDigits(base string) (pair CheckDigitPair, ok bool) {
	digits := sanitizer.KeepDigits(base)
	if len(digits) < cnhBaseLength {
		return CheckDigitPair{}, false
	}
	digits = digits[:cnhBaseLength]

	pair.First = mod11(weightedSum(digits, func(i int) int { return 9 - i }))
	pair.Second = mod11(weightedSum(digits, func(i int) int { return i + 1 }))
	return pair, true
}

// ValidateCNH reports whether raw is exactly eleven digits with correct
// check digits. Formatted input such as "123.456.789-01" is rejected; use
// FormatCNH first to accept it.
func ValidateCNH(raw string) bool {
	if !cnhRegex.MatchString(raw) {
		return false
	}

	pair, _ := CNHCheckDigits(raw)
	return pair.matches(raw[9], raw[10])
}

// FormatCNH removes every non-digit character, whatever the resulting length.
func FormatCNH(raw string) string {
	return sanitizer.KeepDigits(raw)
}

// IsCNHFormat reports whether raw is a plain eleven digit string.
func IsCNHFormat(raw string) bool {
	return cnhRegex.MatchString(raw)
}
