package document

import "github.com/mauriciobenjamin700/regexm/pkg/sanitizer"

const (
	cpfLength     = 11
	cpfBaseLength = 9
)

// CPFCheckDigits computes both CPF verifier digits from the first nine
// digits of base. Non-digit characters are ignored. ok is false when fewer
// than nine digits are present.
func CPFCheckDigits(base string) (pair CheckDigitPair, ok bool) {
	digits := sanitizer.KeepDigits(base)
	if len(digits) < cpfBaseLength {
		return CheckDigitPair{}, false
	}
	digits = digits[:cpfBaseLength]

	pair.First = mod11(weightedSum(digits, func(i int) int { return 10 - i }))
	pair.Second = mod11(weightedSum(digits, func(i int) int { return 11 - i }) + pair.First*2)
	return pair, true
}

// ValidateCPF reports whether raw holds a CPF with correct check digits.
// Punctuation is ignored. Sequences of one repeated digit are always invalid.
func ValidateCPF(raw string) bool {
	digits := sanitizer.KeepDigits(raw)
	if len(digits) != cpfLength || allSameDigit(digits) {
		return false
	}

	pair, _ := CPFCheckDigits(digits)
	return pair.matches(digits[9], digits[10])
}

// FormatCPF renders the XXX.XXX.XXX-XX mask when exactly eleven digits are
// present and returns the bare digits otherwise.
func FormatCPF(raw string) string {
	digits := sanitizer.KeepDigits(raw)
	if len(digits) != cpfLength {
		return digits
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// IsCPFFormat reports whether raw has eleven digits once punctuation is
// removed. Check digits are not verified.
func IsCPFFormat(raw string) bool {
	return len(sanitizer.KeepDigits(raw)) == cpfLength
}
